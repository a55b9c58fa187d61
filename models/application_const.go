package models

// ApplicationStage is the sourcing funnel position of an endorsed applicant.
// It moves independently from ApplicationStatus and from the job order status.
type ApplicationStage string

const (
	ApplicationStageSourced            ApplicationStage = "SOURCED"
	ApplicationStageInternalInterview  ApplicationStage = "INTERNAL_INTERVIEW"
	ApplicationStageInternalAssessment ApplicationStage = "INTERNAL_ASSESSMENT"
	ApplicationStageClientEndorsement  ApplicationStage = "CLIENT_ENDORSEMENT"
	ApplicationStageClientInterview    ApplicationStage = "CLIENT_INTERVIEW"
	ApplicationStageOffer              ApplicationStage = "OFFER"
	ApplicationStageHired              ApplicationStage = "HIRED"
)

var applicationStageHumanName = map[ApplicationStage]string{
	ApplicationStageSourced:            "Sourced",
	ApplicationStageInternalInterview:  "Internal Interview",
	ApplicationStageInternalAssessment: "Internal Assessment",
	ApplicationStageClientEndorsement:  "Client Endorsement",
	ApplicationStageClientInterview:    "Client Interview",
	ApplicationStageOffer:              "Offer",
	ApplicationStageHired:              "Hired",
}

func (s ApplicationStage) ToHuman() string {
	if human, exist := applicationStageHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsValid only checks enum membership. There is intentionally no transition
// table: any stage may be set at any time.
func (s ApplicationStage) IsValid() bool {
	_, exist := applicationStageHumanName[s]
	return exist
}

type ApplicationStatus string

const (
	ApplicationStatusPending ApplicationStatus = "PENDING"
	ApplicationStatusPass    ApplicationStatus = "PASS"
	ApplicationStatusFail    ApplicationStatus = "FAIL"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusPending: "Pending",
	ApplicationStatusPass:    "Pass",
	ApplicationStatusFail:    "Fail",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	_, exist := applicationStatusHumanName[s]
	return exist
}
