package ws

import (
	"context"
	"encoding/json"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/services/energy-service/internal/service"
)

// Frame types served by the live calculator.
const (
	TypeBill       = "bill"
	TypeAppliances = "appliances"
	TypeSolar      = "solar"
)

type billPayload struct {
	calc.BillInput
	Category string `json:"category"`
}

type billReply struct {
	Category calc.Category `json:"category"`
	calc.BillResult
}

type appliancesPayload struct {
	Appliances []calc.ApplianceSpec `json:"appliances"`
}

// RegisterCalculators wires bill, appliance and solar handlers into p.
// Bills are computed in-process.
func RegisterCalculators(p *Processor, appliances *service.ApplianceService, solar *service.SolarService) {
	p.Register(TypeBill, func(_ context.Context, payload json.RawMessage) (interface{}, error) {
		in, err := Decode[billPayload](payload)
		if err != nil {
			return nil, err
		}
		category := calc.Residential
		if in.Category != "" {
			if category, err = calc.ParseCategory(in.Category); err != nil {
				return nil, err
			}
		}
		if in.Method, err = calc.ParseMethod(string(in.Method)); err != nil {
			return nil, err
		}
		result, err := calc.ComputeBillFromInput(in.BillInput, category)
		if err != nil {
			return nil, err
		}
		return billReply{Category: category, BillResult: result}, nil
	})

	p.Register(TypeAppliances, func(_ context.Context, payload json.RawMessage) (interface{}, error) {
		in, err := Decode[appliancesPayload](payload)
		if err != nil {
			return nil, err
		}
		return appliances.Aggregate(in.Appliances)
	})

	p.Register(TypeSolar, func(_ context.Context, payload json.RawMessage) (interface{}, error) {
		in, err := Decode[calc.SolarInput](payload)
		if err != nil {
			return nil, err
		}
		return solar.Estimate(in), nil
	})
}
