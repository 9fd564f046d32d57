package output

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-pathtracer/pkg/config"
)

// fakeS3 records PutObject calls; every other S3API method panics via the nil embed
type fakeS3 struct {
	s3iface.S3API
	inputs      []*s3.PutObjectInput
	bodies      [][]byte
	hadDeadline bool
	err         error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	_, f.hadDeadline = ctx.Deadline()
	body, _ := io.ReadAll(input.Body)
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Upload(t *testing.T) {
	client := &fakeS3{}
	uploader := NewS3UploaderWithClient(client, "renders", "nightly/cornell", nil)

	if err := uploader.Upload(context.Background(), "render.png", []byte("data"), "image/png"); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if len(client.inputs) != 1 {
		t.Fatalf("Expected 1 upload, got %d", len(client.inputs))
	}
	input := client.inputs[0]
	if aws.StringValue(input.Bucket) != "renders" || aws.StringValue(input.Key) != "nightly/cornell/render.png" {
		t.Errorf("Unexpected destination %s/%s", aws.StringValue(input.Bucket), aws.StringValue(input.Key))
	}
	if aws.StringValue(input.ContentType) != "image/png" || aws.Int64Value(input.ContentLength) != 4 {
		t.Errorf("Unexpected metadata %s, %d", aws.StringValue(input.ContentType), aws.Int64Value(input.ContentLength))
	}
	if string(client.bodies[0]) != "data" {
		t.Errorf("Unexpected body %q", client.bodies[0])
	}
	if !client.hadDeadline {
		t.Error("Expected the upload context to carry a timeout")
	}
}

func TestS3Uploader_UploadImage(t *testing.T) {
	client := &fakeS3{}
	uploader := NewS3UploaderWithClient(client, "renders", "", nil)

	if err := uploader.UploadImage(context.Background(), "render.bmp", testImage(4, 4)); err != nil {
		t.Fatalf("UploadImage failed: %v", err)
	}
	if aws.StringValue(client.inputs[0].Key) != "render.bmp" || aws.StringValue(client.inputs[0].ContentType) != "image/bmp" {
		t.Errorf("Unexpected upload %v", client.inputs[0])
	}
	if !strings.HasPrefix(string(client.bodies[0]), "BM") {
		t.Error("Expected a BMP body")
	}

	if err := uploader.UploadImage(context.Background(), "render.gif", testImage(1, 1)); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}

func TestS3Uploader_ErrorWrapped(t *testing.T) {
	failure := errors.New("access denied")
	uploader := NewS3UploaderWithClient(&fakeS3{err: failure}, "renders", "", nil)

	err := uploader.Upload(context.Background(), "render.png", []byte("x"), "image/png")
	if !errors.Is(err, failure) || !strings.Contains(err.Error(), "render.png") {
		t.Errorf("Expected wrapped upload error naming the key, got %v", err)
	}
}

func TestNewS3Uploader(t *testing.T) {
	if _, err := NewS3Uploader(config.S3Config{}, nil); err == nil {
		t.Error("Expected error without a bucket")
	}

	uploader, err := NewS3Uploader(config.S3Config{
		Bucket:    "renders",
		Region:    "us-east-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
		Prefix:    "p",
	}, nil)
	if err != nil {
		t.Fatalf("NewS3Uploader failed: %v", err)
	}
	if uploader.Key("a.png") != "p/a.png" {
		t.Errorf("Unexpected key %s", uploader.Key("a.png"))
	}
}
