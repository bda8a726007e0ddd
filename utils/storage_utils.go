package utils

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3-compatible object storage settings, filled in by Configure at startup.
var (
	accessKey string
	secretKey string
	bucket    string
	region    string
	endpoint  string
	publicURL string
)

// Configure sets the storage credentials and bucket used by the upload
// helpers.
func Configure(access, secret, bucketName, regionName, endpointURL, public string) {
	accessKey = access
	secretKey = secret
	bucket = bucketName
	region = regionName
	endpoint = endpointURL
	publicURL = public
}

func getS3Client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(
			accessKey, secretKey, "",
		),
	}))
	return s3.New(sess)
}

// UploadFileToS3 stores the file under folder/fileName with public-read ACL
// and returns the public URL.
func UploadFileToS3(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	s3Client := getS3Client()

	_, err := s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s", publicURL, filePath), nil
}

// DeleteFileFromS3 removes an object by its key (the folder/fileName path
// returned alongside upload responses).
func DeleteFileFromS3(key string) error {
	s3Client := getS3Client()

	_, err := s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("unable to delete file from S3: %v", err)
	}
	return nil
}
