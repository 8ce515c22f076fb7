package initializers

import (
	"time"

	"wired-people-backend/config"
	"wired-people-backend/fiberlog"
	dashboardhandler "wired-people-backend/lib/dashboard"
	csvexport "wired-people-backend/lib/export/csv"
	pdfexport "wired-people-backend/lib/export/pdf"
	xlsexport "wired-people-backend/lib/export/xls"
	processhandler "wired-people-backend/lib/process"
	processstore "wired-people-backend/lib/process/store"
	talenthandler "wired-people-backend/lib/talent"
	talentstore "wired-people-backend/lib/talent/store"
	upstreamclient "wired-people-backend/lib/upstream/client"
)

var LoggerConfig *fiberlog.Config

// InitAllServices wires every Instance singleton in dependency order:
// client first, stores next, handlers last.
func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()

	upstreamclient.NewProvider(
		config.Conf.Upstream.BaseUrl,
		time.Duration(config.Conf.Upstream.TimeoutSec)*time.Second,
	)

	csvexport.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()

	processStore := processstore.NewInstance(
		upstreamclient.Instance,
		config.Conf.Tenant.CompanyID,
		config.Conf.Upstream.MaxPageFetches,
	)
	talentStore := talentstore.NewInstance(
		upstreamclient.Instance,
		config.Conf.Tenant.CompanyID,
		config.Conf.Upstream.MaxPageFetches,
	)

	processhandler.NewHandler(processStore, processhandler.TenantConfig{
		CompanyID:   config.Conf.Tenant.CompanyID,
		CompanyName: config.Conf.Tenant.CompanyName,
	})
	talenthandler.NewHandler(talentStore)
	dashboardhandler.NewHandler(upstreamclient.Instance, *config.Conf.Panel.SimulateOnFailure)
}
