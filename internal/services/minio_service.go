package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"moodboard/configs"
	"moodboard/internal/enums"
	"moodboard/internal/errs"
)

type MinioService struct {
	minioClient *minio.Client
	config      *configs.Config
}

var (
	minioService *MinioService
	once         sync.Once
)

func NewMinioService(config *configs.Config) *MinioService {
	once.Do(func() {
		minioService = &MinioService{
			config: config,
		}

		endpoint := config.Viper.GetString("minio.endpoint")
		accessKeyID := config.Viper.GetString("minio.access_key_id")
		secretAccessKey := config.Viper.GetString("minio.secret_access_key")
		useSSL := config.Viper.GetBool("minio.use_ssl")

		if endpoint == "" || accessKeyID == "" || secretAccessKey == "" {
			// Uploads will fail with a distinct error until credentials
			// are provided; the rest of the app keeps working.
			log.Println("Minio credentials missing, object storage disabled")
			return
		}

		minioClient, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
			Secure: useSSL,
		})
		if err != nil {
			log.Printf("Failed to initialize minio client: %v", err)
			return
		}

		bucketName := enums.FILE_BUCKET_BOARD_IMAGES
		err = minioClient.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
		if err != nil {
			exists, errBucketExists := minioClient.BucketExists(context.Background(), bucketName)
			if errBucketExists == nil && exists {
				log.Printf("We already own %s\n", bucketName)
			} else {
				log.Printf("Failed to create bucket %s: %v", bucketName, err)
				return
			}
		} else {
			log.Printf("Successfully created %s\n", bucketName)
		}

		minioService.minioClient = minioClient
	})
	return minioService
}

func (ms *MinioService) Configured() bool {
	return ms.minioClient != nil
}

func (ms *MinioService) UploadFile(fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	if ms.minioClient == nil {
		return "", errs.ErrStorageNotConfigured
	}

	info, err := ms.minioClient.PutObject(context.Background(), bucketName, fileName, file, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		log.Println(err)
		return "", errs.ErrUploadFailed
	}

	publicUrl, err := ms.GetPublicFileUrl(bucketName, info.Key)
	if err != nil {
		log.Println(err)
		return "", err
	}
	return publicUrl, nil
}

func (ms *MinioService) GetPublicFileUrl(bucketName, fileKey string) (string, error) {
	externalEndpoint := ms.config.Viper.GetString("minio.external_endpoint")
	if externalEndpoint == "" {
		externalEndpoint = ms.config.Viper.GetString("minio.endpoint")
	}
	path := fmt.Sprintf("http://%s/%s/%s", externalEndpoint, bucketName, fileKey)
	return path, nil
}
