// ================== internal/features/pets/model.go ==================
package pets

// Pet represents a pet profile
// @Description Pet that reminders are attached to
type Pet struct {
	ID      string `bson:"id" json:"id" example:"1"`
	Name    string `bson:"name" json:"name" example:"Browny"`
	Species string `bson:"species,omitempty" json:"species,omitempty" example:"Dog"`
	Breed   string `bson:"breed,omitempty" json:"breed,omitempty" example:"Golden Retriever"`
	Avatar  string `bson:"avatar,omitempty" json:"avatar,omitempty" example:"https://res.cloudinary.com/demo/avatars/browny.png"`
}

// CreatePetRequest represents pet creation data
// @Description Data required to create a new pet
type CreatePetRequest struct {
	Name    string `json:"name" binding:"required" example:"Browny"`
	Species string `json:"species" example:"Dog"`
	Breed   string `json:"breed" example:"Golden Retriever"`
	Avatar  string `json:"avatar" example:"https://res.cloudinary.com/demo/avatars/browny.png"`
}

// UpdatePetRequest represents pet update data
// @Description Data for updating an existing pet; empty fields are left untouched
type UpdatePetRequest struct {
	Name    string `json:"name" example:"Browny"`
	Species string `json:"species" example:"Dog"`
	Breed   string `json:"breed" example:"Golden Retriever"`
	Avatar  string `json:"avatar" example:"https://res.cloudinary.com/demo/avatars/browny.png"`
}

// DefaultPets are seeded on the first read of an empty collection
var DefaultPets = []Pet{
	{ID: "1", Name: "Browny", Species: "Dog", Breed: "Golden Retriever"},
	{ID: "2", Name: "Whiskers", Species: "Cat", Breed: "Persian"},
	{ID: "3", Name: "Buddy", Species: "Dog", Breed: "Labrador"},
}
