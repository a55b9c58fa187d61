package initializers

import (
	"context"

	"ats-backend/config"
	"ats-backend/fiberlog"
	"ats-backend/lib/applicant"
	"ats-backend/lib/auth"
	"ats-backend/lib/clients"
	"ats-backend/lib/commission"
	"ats-backend/lib/endorsement"
	xlsexport "ats-backend/lib/export/xls"
	"ats-backend/lib/joborder"
	"ats-backend/lib/pipeline"
	systemlog "ats-backend/lib/system-log"
	"ats-backend/lib/users"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	systemlog.NewHandler()
	users.NewHandler()
	auth.NewHandler()
	clients.NewHandler()
	joborder.NewHandler()
	applicant.NewHandler()
	endorsement.NewHandler()
	commission.NewHandler()
	pipeline.NewHandler()
	xlsexport.NewHandler()
}
