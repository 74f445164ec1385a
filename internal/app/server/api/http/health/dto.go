package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status   string `json:"status" example:"success" doc:"Health status of the service"`
	Database string `json:"database" example:"OK" doc:"Database connectivity"`
}
