package eventmodels

type AppVersionResponseDTO struct {
	Version string `json:"version"`
}
