package eventservices

import (
	"net/http"

	"github.com/jiaming2012/optionshq/src/eventmodels"
)

const AppVersionNumber = "1.3.0"

type AppVersion struct{}

func (m *AppVersion) Serve(r *http.Request, apiRequest eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	resultCh <- &eventmodels.AppVersionResponseDTO{
		Version: AppVersionNumber,
	}
}
