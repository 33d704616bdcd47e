// Package storage wraps the MinIO object store that holds complaint
// photos and profile pictures. Only URLs leave this package; file bytes
// never reach the database.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/improvemycity/portal-go/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

func Init() {
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket %s: %v", BucketName, err)
		}
	}

	Client = minioClient
	log.Println("Connected to MinIO, bucket:", BucketName)
}

// UploadImage stores an image under a random object name and returns
// the stable public URL.
func UploadImage(ctx context.Context, reader io.Reader, size int64, contentType, filename string) (string, error) {
	ext := path.Ext(filename)
	objectName := uuid.NewString() + ext

	_, err := Client.PutObject(ctx, BucketName, objectName, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return ObjectURL(objectName), nil
}

// ObjectURL builds the public URL for a stored object.
func ObjectURL(objectName string) string {
	base := strings.TrimSuffix(config.MinioPublicURL, "/")
	return fmt.Sprintf("%s/%s/%s", base, BucketName, objectName)
}

// DeleteObject removes an object from the bucket.
func DeleteObject(ctx context.Context, objectName string) error {
	return Client.RemoveObject(ctx, BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
