package models

type LogAction string

const (
	LogActionCreated LogAction = "created"
	LogActionUpdated LogAction = "updated"
	LogActionDeleted LogAction = "deleted"
)

// Entity type tags written into the audit log.
const (
	EntityTypeUser          = "user"
	EntityTypeClient        = "client"
	EntityTypeJobOrder      = "job_order"
	EntityTypeApplicant     = "applicant"
	EntityTypeEndorsement   = "job_order_applicant"
	EntityTypeCommission    = "commission"
	EntityTypePipelineCard  = "pipeline_card"
	EntityTypeCardApplicant = "pipeline_card_applicant"
)
