package dto

type PullImageRequestDTO struct {
	Image string `json:"image" binding:"required"`
}

type PullImageResponseDTO struct {
	Image     string `json:"image"`
	Scheduled int    `json:"scheduled"`
}

type CloudServiceRequestDTO struct {
	TemplateID  string `json:"template_id" binding:"required,uuid"`
	ServiceName string `json:"service_name" binding:"required"`
	Label       string `json:"label"`
	Location    string `json:"location"`
}
