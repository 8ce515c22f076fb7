package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Upstream struct {
		BaseUrl        string `default:"http://localhost:5000" env:"UPSTREAM_BASE_URL"`
		TimeoutSec     int    `default:"30" env:"UPSTREAM_TIMEOUT_SEC"`
		MaxPageFetches int    `default:"10" env:"UPSTREAM_MAX_PAGE_FETCHES"`
	}
	Tenant struct {
		CompanyID   string `default:"wired-people" env:"TENANT_COMPANY_ID"`
		CompanyName string `default:"Wired People Inc." env:"TENANT_COMPANY_NAME"`
	}
	Panel struct {
		// SimulateOnFailure keeps dashboards populated with synthetic
		// data when the upstream panel endpoints fail.
		SimulateOnFailure *bool `default:"true" env:"PANEL_SIMULATE_ON_FAILURE"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
