package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// FoodRecognizer maps an image to an ordered list of food labels.
// The returned list may be empty; the pipeline decides what that means.
type FoodRecognizer interface {
	Recognize(ctx context.Context, image []byte, mimeType string) ([]string, error)
}

type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService(region string) (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// Labels Rekognition attaches to almost every meal photo but which name no
// food. Kept lowercase for the comparison.
var nonFoodLabels = map[string]struct{}{
	"food":     {},
	"meal":     {},
	"dish":     {},
	"plate":    {},
	"bowl":     {},
	"cutlery":  {},
	"table":    {},
	"person":   {},
	"beverage": {},
}

func (r *RekognitionService) Recognize(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("unsupported content type %q", mimeType)
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		if l.Name == nil {
			continue
		}
		labels = append(labels, *l.Name)
	}
	return filterFoodLabels(labels), nil
}

// filterFoodLabels drops generic scene labels, preserving order.
func filterFoodLabels(labels []string) []string {
	var out []string
	for _, l := range labels {
		if _, generic := nonFoodLabels[strings.ToLower(l)]; generic {
			continue
		}
		out = append(out, l)
	}
	return out
}
