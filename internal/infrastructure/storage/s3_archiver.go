package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/domain/entities"
	"github.com/Yamlte/VSK-Insurance-API-Handler/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	ErrDocumentMissing = errors.New("document missing in upstream response")
	ErrInvalidDocument = errors.New("document payload is not valid base64")
)

const (
	documentKeyPrefix = "policies/"
	documentExt       = ".pdf"
	pdfContentType    = "application/pdf"
	signedURLValidity = time.Hour
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type urlSigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Archiver stores policy documents in S3-compatible object storage and
// issues presigned retrieval links with a fixed validity window.

type S3Archiver struct {
	bucket  string
	client  objectPutter
	presign urlSigner
}

var _ interfaces.IDocumentArchiver = (*S3Archiver)(nil)

// NewS3Archiver creates the object storage client from static credentials.
// Endpoint override supports S3-compatible providers (Yandex Object Storage
// by default) and local stacks.
func NewS3Archiver(ctx context.Context, bucket, endpoint, region, accessKeyID, secretAccessKey string) (*S3Archiver, error) {
	creds := credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})
	return &S3Archiver{
		bucket:  bucket,
		client:  client,
		presign: s3.NewPresignClient(client),
	}, nil
}

func (a *S3Archiver) Archive(ctx context.Context, policyNumber, base64PDF string) (entities.StoredDocument, error) {
	if base64PDF == "" {
		log.Printf("[storage][archiver] document missing policy_number=%s", policyNumber)
		return entities.StoredDocument{}, ErrDocumentMissing
	}

	raw, err := base64.StdEncoding.DecodeString(base64PDF)
	if err != nil {
		log.Printf("[storage][archiver] base64 decode failed policy_number=%s err=%v", policyNumber, err)
		return entities.StoredDocument{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	key := documentKeyPrefix + policyNumber + documentExt
	log.Printf("[storage][archiver] put start key=%s bytes=%d", key, len(raw))
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String(pdfContentType),
	})
	if err != nil {
		log.Printf("[storage][archiver] put failed key=%s err=%v", key, err)
		return entities.StoredDocument{}, err
	}

	signed, err := a.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(signedURLValidity))
	if err != nil {
		log.Printf("[storage][archiver] presign failed key=%s err=%v", key, err)
		return entities.StoredDocument{}, err
	}

	log.Printf("[storage][archiver] archived key=%s", key)
	return entities.StoredDocument{
		Key:         key,
		ContentType: pdfContentType,
		SignedURL:   signed.URL,
		ExpiresAt:   time.Now().UTC().Add(signedURLValidity),
	}, nil
}
