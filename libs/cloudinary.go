package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryEnabled reports whether a Cloudinary account is configured; when
// it is, menu item images go to Cloudinary instead of the local upload dir.
func CloudinaryEnabled() bool {
	return os.Getenv("CLOUDINARY_URL") != "" ||
		(os.Getenv("CLOUDINARY_CLOUD_NAME") != "" &&
			os.Getenv("CLOUDINARY_API_KEY") != "" &&
			os.Getenv("CLOUDINARY_API_SECRET") != "")
}

func client() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName != "" && apiKey != "" && apiSecret != "" {
		return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	}

	cldURL := os.Getenv("CLOUDINARY_URL")
	if cldURL == "" {
		return nil, fmt.Errorf("cloudinary environment variables not set")
	}
	return cloudinary.NewFromURL(cldURL)
}

// UploadToCloudinary uploads a local file to the menu-items folder and removes
// the local copy afterwards.
func UploadToCloudinary(localPath string) (string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := client()
	if err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("menu_item_%d", time.Now().UnixNano()),
		Folder:   "menu-items",
	})

	os.Remove(localPath)

	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("cloudinary response is nil")
	}

	if resp.SecureURL == "" {
		if resp.URL != "" {
			return resp.URL, nil
		}
		return "", fmt.Errorf("cloudinary returned no URL")
	}
	return resp.SecureURL, nil
}

func DeleteFromCloudinary(publicID string) error {
	cld, err := client()
	if err != nil {
		return err
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete from Cloudinary: %v", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
