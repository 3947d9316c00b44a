package helper

import (
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary prepara o client usado no upload de fotos de produtos
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
}
