package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"StyleMate-Server/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, file *multipart.FileHeader, dir string) (string, error)
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Errorf("error loading AWS config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}
}

func (a *awsS3) UploadFile(ctx context.Context, file *multipart.FileHeader, dir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", dir, uuid.New().String(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key), nil
}
