package storage_fx

import (
	"os"

	"go.uber.org/fx"
	"sharix/internal/services"
)

var Module = fx.Provide(provideProofStore)

func provideProofStore() services.ProofStore {
	return services.NewCloudinaryStore(services.CloudinaryConfig{
		CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		Folder:       "sharix-images",
	})
}
