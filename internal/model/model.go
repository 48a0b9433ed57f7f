// Package model holds the value types exchanged between the simulation core
// and its collaborators. All types are plain data; ownership of the mutable
// state they snapshot stays with the environment and the agent.
package model

// Percept is the agent's observed snapshot of the environment for one step.
type Percept struct {
	Price float64 `json:"price"`
	Stock float64 `json:"stock"`
}

// Action is the agent's chosen intervention for one step. Buy is never
// negative.
type Action struct {
	Buy int `json:"buy"`
}

// Decision is the full outcome of one agent decision: the action plus the
// monitor verdicts and the updated running average that produced it. Both
// monitor fields are always populated, even when only one drove the order.
type Decision struct {
	Action        `json:"action"`
	PriceDiscount bool    `json:"price_discount"`
	LowStock      bool    `json:"low_stock"`
	AveragePrice  float64 `json:"average_price"`
}

// StepRecord is the structured per-step record handed to recorders. It is a
// projection of state the core also exposes programmatically; consumers must
// never need to parse logs to reconstruct a run.
type StepRecord struct {
	Step          int     `json:"step"`
	Price         float64 `json:"price"`
	Stock         float64 `json:"stock"`
	PriceDiscount bool    `json:"price_discount"`
	LowStock      bool    `json:"low_stock"`
	Buy           int     `json:"buy"`
	AveragePrice  float64 `json:"average_price"`
	Spent         float64 `json:"spent"`
}

// RunSummary aggregates a finished run for listings and reports.
type RunSummary struct {
	RunID        string  `json:"run_id"`
	CreatedAt    string  `json:"created_at"`
	Status       string  `json:"status"`
	Seed         uint64  `json:"seed"`
	Steps        int     `json:"steps"`
	TotalSpent   float64 `json:"total_spent"`
	UnitsBought  int     `json:"units_bought"`
	FinalPrice   float64 `json:"final_price"`
	FinalStock   float64 `json:"final_stock"`
	AveragePrice float64 `json:"average_price"`
}
