package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/raushankrgupta/tonies-catalog/config"
)

var S3Client *s3.Client

// InitS3 initializes the S3 client
func InitS3() error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(appConfig.AWSRegion),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	S3Client = s3.NewFromConfig(cfg)
	log.Println("S3 Client Initialized")
	return nil
}

// UploadFileToS3 uploads a file to the image bucket and returns the Object Key
func UploadFileToS3(ctx context.Context, file io.Reader, objectKey string, contentType string) (string, error) {
	if S3Client == nil {
		if err := InitS3(); err != nil {
			return "", err
		}
	}

	_, err := S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(appConfig.AWSBucketName),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return objectKey, nil
}

// DeleteFileFromS3 removes an object from the image bucket
func DeleteFileFromS3(ctx context.Context, objectKey string) error {
	if S3Client == nil {
		if err := InitS3(); err != nil {
			return err
		}
	}

	_, err := S3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(appConfig.AWSBucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s from S3: %w", objectKey, err)
	}
	return nil
}

// PublicURL returns the public address of an object in the image bucket
func PublicURL(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		appConfig.AWSBucketName, appConfig.AWSRegion, url.PathEscape(objectKey))
}

// IsBucketURL reports whether rawURL points into the image bucket
func IsBucketURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, PublicURL(""))
}

// ObjectKeyFromURL returns the object key a public URL points at: its last path segment.
func ObjectKeyFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	key := path.Base(u.Path)
	if key == "" || key == "." || key == "/" {
		return "", fmt.Errorf("no object key in %q", rawURL)
	}
	return key, nil
}
