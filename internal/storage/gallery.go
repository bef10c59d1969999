package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/tiadeasalon/salon-manager/internal/config"
)

const (
	galleryPrefix = "gallery/"
	maxWidth      = 1600
	webpQuality   = 85
)

// GalleryStore guarda as fotos da galeria num bucket S3. Toda imagem é
// reencodada em webp antes do upload e servida por URL pública.
type GalleryStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewGalleryStore(cfg *config.Config) *GalleryStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := strings.TrimSuffix(cfg.S3PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &GalleryStore{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

// Upload reencoda a imagem, grava com nome resistente a colisão e
// devolve a URL pública.
func (g *GalleryStore) Upload(ctx context.Context, data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("invalid image: %w", err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	key := fmt.Sprintf("%s%d-%s.webp", galleryPrefix, time.Now().UnixMilli(), uuid.NewString())

	_, err = g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return g.urlFor(key), nil
}

// List devolve as URLs públicas de todas as fotos da galeria.
func (g *GalleryStore) List(ctx context.Context) ([]string, error) {
	out, err := g.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(g.bucket),
		Prefix: aws.String(galleryPrefix),
	})
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		if obj.Key == nil || *obj.Key == galleryPrefix {
			continue
		}
		urls = append(urls, g.urlFor(*obj.Key))
	}
	return urls, nil
}

// Delete remove uma foto a partir da URL pública: vale o último segmento
// do caminho, como no restante do sistema.
func (g *GalleryStore) Delete(ctx context.Context, imageURL string) error {
	parts := strings.Split(imageURL, "/")
	name := parts[len(parts)-1]
	if name == "" {
		return fmt.Errorf("invalid image url")
	}

	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(galleryPrefix + name),
	})
	return err
}

func (g *GalleryStore) urlFor(key string) string {
	return g.publicURL + "/" + key
}

func downscale(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
