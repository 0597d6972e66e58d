package entities

import "time"

type WorkOrderStatus string

const (
	WorkOrderStatusPlanned         WorkOrderStatus = "Planned"
	WorkOrderStatusInProgress      WorkOrderStatus = "InProgress"
	WorkOrderStatusOnHold          WorkOrderStatus = "OnHold"
	WorkOrderStatusCompleted       WorkOrderStatus = "Completed"
	WorkOrderStatusQualityApproved WorkOrderStatus = "QualityApproved"
	WorkOrderStatusCancelled       WorkOrderStatus = "Cancelled"
)

type JourneyStatus string

const (
	JourneyStatusActive    JourneyStatus = "Active"
	JourneyStatusPaused    JourneyStatus = "Paused"
	JourneyStatusCompleted JourneyStatus = "Completed"
)

type StepStatus string

const (
	StepStatusPending    StepStatus = "pending"
	StepStatusInProgress StepStatus = "in-progress"
	StepStatusCompleted  StepStatus = "completed"
)

// SetupStep is the journey step whose status follows resource assignment.
const SetupStep = "Setup"

// DefaultJourneySteps is the route a new journey starts with.
var DefaultJourneySteps = []string{SetupStep, "Fabrication", "Assembly", "Quality Check", "Dispatch"}

var DefaultWorkOrderSteps = []string{"Material Procurement", "Fabrication", "Assembly", "Testing", "Quality Inspection"}

type Step struct {
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
}

// WorkOrder is the production order released from a sales order.
type WorkOrder struct {
	ID           string          `json:"id"`
	SalesOrderID string          `json:"sales_order_id"`
	OrderID      string          `json:"order_id"`
	Status       WorkOrderStatus `json:"status"`
	Progress     int             `json:"progress"`
	Steps        []Step          `json:"steps"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Journey follows one work order across workstations.
type Journey struct {
	ID           string        `json:"id"`
	WorkOrderID  string        `json:"work_order_id"`
	Status       JourneyStatus `json:"status"`
	Workstations []string      `json:"workstations"`
	Operators    []string      `json:"operators"`
	Steps        []Step        `json:"steps"`
	Progress     int           `json:"progress"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (j Journey) Clone() Journey {
	c := j
	c.Workstations = append([]string(nil), j.Workstations...)
	c.Operators = append([]string(nil), j.Operators...)
	c.Steps = append([]Step(nil), j.Steps...)
	return c
}

func (w WorkOrder) Clone() WorkOrder {
	c := w
	c.Steps = append([]Step(nil), w.Steps...)
	return c
}
