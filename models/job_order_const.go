package models

type JobOrderStatus string

const (
	JobOrderStatusKickoff            JobOrderStatus = "KICKOFF"
	JobOrderStatusSourcing           JobOrderStatus = "SOURCING"
	JobOrderStatusInternalInterview  JobOrderStatus = "INTERNAL_INTERVIEW"
	JobOrderStatusInternalAssessment JobOrderStatus = "INTERNAL_ASSESSMENT"
	JobOrderStatusClientEndorsement  JobOrderStatus = "CLIENT_ENDORSEMENT"
	JobOrderStatusClientAssessment   JobOrderStatus = "CLIENT_ASSESSMENT"
	JobOrderStatusClientInterview    JobOrderStatus = "CLIENT_INTERVIEW"
	JobOrderStatusOffer              JobOrderStatus = "OFFER"
	JobOrderStatusHired              JobOrderStatus = "HIRED"
	JobOrderStatusOnHold             JobOrderStatus = "ON_HOLD"
	JobOrderStatusCanceled           JobOrderStatus = "CANCELED"
)

var jobOrderStatusHumanName = map[JobOrderStatus]string{
	JobOrderStatusKickoff:            "Kickoff",
	JobOrderStatusSourcing:           "Sourcing",
	JobOrderStatusInternalInterview:  "Internal Interview",
	JobOrderStatusInternalAssessment: "Internal Assessment",
	JobOrderStatusClientEndorsement:  "Client Endorsement",
	JobOrderStatusClientAssessment:   "Client Assessment",
	JobOrderStatusClientInterview:    "Client Interview",
	JobOrderStatusOffer:              "Offer",
	JobOrderStatusHired:              "Hired",
	JobOrderStatusOnHold:             "On-hold",
	JobOrderStatusCanceled:           "Canceled",
}

func (s JobOrderStatus) ToHuman() string {
	if human, exist := jobOrderStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s JobOrderStatus) IsValid() bool {
	_, exist := jobOrderStatusHumanName[s]
	return exist
}

// IsTerminal reports whether the job order left the active funnel.
func (s JobOrderStatus) IsTerminal() bool {
	return s == JobOrderStatusOnHold || s == JobOrderStatusCanceled
}

type JobOrderPriority string

const (
	JobOrderPriorityLow  JobOrderPriority = "LOW"
	JobOrderPriorityMid  JobOrderPriority = "MID"
	JobOrderPriorityHigh JobOrderPriority = "HIGH"
)

var jobOrderPriorityHumanName = map[JobOrderPriority]string{
	JobOrderPriorityLow:  "Low",
	JobOrderPriorityMid:  "Mid",
	JobOrderPriorityHigh: "High",
}

// BoardLanes is the fixed lane order of the job order board.
var BoardLanes = []JobOrderPriority{JobOrderPriorityHigh, JobOrderPriorityMid, JobOrderPriorityLow}

func (p JobOrderPriority) ToHuman() string {
	if human, exist := jobOrderPriorityHumanName[p]; exist {
		return human
	}
	return string(p)
}

func (p JobOrderPriority) IsValid() bool {
	_, exist := jobOrderPriorityHumanName[p]
	return exist
}
