package models

// Milestone is a named project-delivery checkpoint.
type Milestone string

const (
	PublicConsultationCompleted Milestone = "PUBLIC_CONSULTATION_COMPLETED"
	FeasibilityDesignStarted    Milestone = "FEASIBILITY_DESIGN_STARTED"
	FeasibilityDesignCompleted  Milestone = "FEASIBILITY_DESIGN_COMPLETED"
	PreliminaryDesignCompleted  Milestone = "PRELIMINARY_DESIGN_COMPLETED"
	OutlineDesignCompleted      Milestone = "OUTLINE_DESIGN_COMPLETED"
	DetailedDesignCompleted     Milestone = "DETAILED_DESIGN_COMPLETED"
	ConstructionStarted         Milestone = "CONSTRUCTION_STARTED"
	ConstructionCompleted       Milestone = "CONSTRUCTION_COMPLETED"
	FundingCompleted            Milestone = "FUNDING_COMPLETED"
	NotProgressed               Milestone = "NOT_PROGRESSED"
	Superseded                  Milestone = "SUPERSEDED"
	Removed                     Milestone = "REMOVED"
)

type milestoneInfo struct {
	order    int
	active   bool
	complete bool
}

// milestones is in delivery order.
var milestones = []Milestone{
	PublicConsultationCompleted,
	FeasibilityDesignStarted,
	FeasibilityDesignCompleted,
	PreliminaryDesignCompleted,
	OutlineDesignCompleted,
	DetailedDesignCompleted,
	ConstructionStarted,
	ConstructionCompleted,
	FundingCompleted,
	NotProgressed,
	Superseded,
	Removed,
}

var milestoneInfos = func() map[Milestone]milestoneInfo {
	inactive := map[Milestone]bool{NotProgressed: true, Superseded: true, Removed: true}
	complete := map[Milestone]bool{ConstructionCompleted: true, FundingCompleted: true}
	infos := make(map[Milestone]milestoneInfo, len(milestones))
	for i, m := range milestones {
		infos[m] = milestoneInfo{
			order:    i,
			active:   !inactive[m],
			complete: complete[m] || inactive[m],
		}
	}
	return infos
}()

// Milestones returns every milestone in delivery order.
func Milestones() []Milestone {
	return append([]Milestone(nil), milestones...)
}

// IsActive reports whether a scheme at this milestone is still being delivered.
func (m Milestone) IsActive() bool {
	return milestoneInfos[m].active
}

// IsComplete reports whether a scheme at this milestone needs no further updates.
func (m Milestone) IsComplete() bool {
	return milestoneInfos[m].complete
}

// Before reports whether m comes before other in delivery order.
func (m Milestone) Before(other Milestone) bool {
	return milestoneInfos[m].order < milestoneInfos[other].order
}
