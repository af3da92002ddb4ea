package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	ImagePullService *ImagePullService
}

func InitProduce(channel *amqp.Channel) *Produce {
	imagePullService := InitImagePullService(channel)
	if imagePullService == nil {
		panic("Failed to initialize ImagePull service")
	}

	return &Produce{
		ImagePullService: imagePullService,
	}
}
