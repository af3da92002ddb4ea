package dto

type PropertiesRequestDTO struct {
	Properties []PropertyDTO `json:"properties" binding:"required,dive"`
}

type PropertyDTO struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type TagsRequestDTO struct {
	Tags []string `json:"tags"`
}

type OrganizerRequestDTO struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Homepage    *string `json:"homepage"`
	Logo        *string `json:"logo"`
}
