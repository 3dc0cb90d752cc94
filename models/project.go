package models

// Project represents a portfolio project record
type Project struct {
	ID                 string   `json:"id" gorm:"primaryKey;type:text"`
	Title              string   `json:"title" gorm:"not null;index"`
	Overview           string   `json:"overview"`
	Description        string   `json:"description"`
	CreationDate       string   `json:"creationDate" gorm:"column:creation_date;index"` // display string, e.g. "November 2021"
	Type               string   `json:"type" gorm:"not null;index"`
	TechTags           []string `json:"techTags" gorm:"column:tech_tags;type:jsonb;serializer:json"`
	BackendGithubLink  string   `json:"backendGithubLink"`
	FrontendGithubLink string   `json:"frontendGithubLink"`
	BackendHostedLink  string   `json:"backendHostedLink"`
	FrontendHostedLink string   `json:"frontendHostedLink"`
	MainImage          string   `json:"mainImage"`
	Screenshots        []string `json:"screenshots" gorm:"type:jsonb;serializer:json"`
}

// TableName sets the table name for Project model
func (Project) TableName() string {
	return "projects"
}
