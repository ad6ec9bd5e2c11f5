package models

// Note is a caretaker note attached to a cat, optionally carrying an
// uploaded attachment. Notes are listed newest-first.
type Note struct {
	BaseModel
	CatID              string `gorm:"size:36;index;not null" json:"catId"`
	Author             string `gorm:"size:100" json:"author"`
	Content            string `gorm:"type:text" json:"content"`
	AttachmentFilename string `gorm:"size:200" json:"attachment,omitempty"`

	Cat Cat `gorm:"foreignKey:CatID" json:"-"`
}
