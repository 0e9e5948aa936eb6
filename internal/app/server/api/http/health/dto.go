package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - состояние эмулятора и его хранилища документов
type Response struct {
	Status  string `json:"status" example:"OK" doc:"Состояние сервиса"`
	Storage string `json:"storage" example:"OK" doc:"Состояние хранилища документов"`
	PingMS  int64  `json:"ping_ms" example:"1" doc:"Время ответа хранилища в миллисекундах"`
}
