package ali

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/reusedev/tutor-voice/config"
	"github.com/reusedev/tutor-voice/internal/modules/audio"
)

type OssClient struct {
	client     *oss.Client
	endpoint   string
	bucketName string
	directory  string
	expires    time.Duration
}

func NewOSS(config config.AliOss, expires time.Duration) *OssClient {
	credential := credentials.NewStaticCredentialsProvider(config.AccessKeyId, config.AccessKeySecret, "")
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credential).
		WithEndpoint(config.Endpoint).WithRegion(config.Region)
	client := oss.NewClient(cfg)
	if client == nil {
		panic("create oss client failed")
	}
	return &OssClient{
		client:     client,
		endpoint:   config.Endpoint,
		bucketName: config.Bucket,
		directory:  config.Directory,
		expires:    expires,
	}
}

// Archive uploads the clip and returns a presigned download URL.
func (o *OssClient) Archive(ctx context.Context, clip *audio.Clip) (string, error) {
	fName := clip.ID + clip.Format.Ext()
	key := o.fullPath(fName)
	if err := o.upload(ctx, fName, key, clip.Format.ContentType(), bytes.NewReader(clip.Data)); err != nil {
		return "", err
	}
	return o.URL(ctx, key)
}

func (o *OssClient) URL(ctx context.Context, key string) (string, error) {
	ret, err := o.client.Presign(ctx, &oss.GetObjectRequest{Bucket: oss.Ptr(o.bucketName), Key: oss.Ptr(key)}, oss.PresignExpires(o.expires))
	if err != nil {
		return "", err
	}
	return ret.URL, nil
}

func (o *OssClient) fullPath(fName string) string {
	return o.directory + fName
}

func (o *OssClient) upload(ctx context.Context, fName, key, contentType string, reader io.Reader) error {
	request := &oss.PutObjectRequest{
		Bucket:             oss.Ptr(o.bucketName),
		Key:                oss.Ptr(key),
		Body:               reader,
		ContentType:        oss.Ptr(contentType),
		ContentDisposition: oss.Ptr(fmt.Sprintf("attachment; filename=\"%s\"", fName)),
	}
	_, err := o.client.PutObject(ctx, request)
	if err != nil {
		return err
	}
	return nil
}
