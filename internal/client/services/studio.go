package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/vidwave/internal/client/client"
	"github.com/dmitrijs2005/vidwave/internal/client/models"
)

// DefaultCategory is used when an upload names none.
const DefaultCategory = "Technology"

// Categories lists the platform's video categories.
var Categories = []string{
	"Technology", "Travel", "Cooking", "Finance", "Self-development",
	"Gaming", "Music", "Sports", "Humor", "Other",
}

// ThumbnailSuggestions are ready-made prompts offered to authors.
var ThumbnailSuggestions = []string{
	"Top 10 productivity hacks, office, neon",
	"Trip to the mountains, sunset, cinematic",
	"New phone review, studio, bright background",
	"Cooking, delicious food close-up",
	"Gaming stream, neon light, action",
	"Finance and investing, money, success",
}

// minBarHeight keeps empty months visible on the chart.
const minBarHeight = 4.0

type UploadInput struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	Category     string `json:"category" validate:"category"`
}

// StudioService covers the author dashboard and publishing.
type StudioService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	Upload(ctx context.Context, in UploadInput) (*models.UploadResult, error)
	GenerateThumbnail(ctx context.Context, prompt string) (*models.Thumbnail, error)
}

type studioService struct {
	client client.Client
}

func NewStudioService(c client.Client) StudioService {
	return &studioService{client: c}
}

func (s *studioService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return s.client.DashboardStats(ctx)
}

func (s *studioService) Upload(ctx context.Context, in UploadInput) (*models.UploadResult, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ThumbnailURL = strings.TrimSpace(in.ThumbnailURL)
	in.Category = strings.TrimSpace(in.Category)
	if in.Category == "" {
		in.Category = DefaultCategory
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	return s.client.UploadVideo(ctx, in.Title, in.Description, in.ThumbnailURL, in.Category)
}

func (s *studioService) GenerateThumbnail(ctx context.Context, prompt string) (*models.Thumbnail, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, newValidationError("prompt", "is required")
	}
	return s.client.GenerateThumbnail(ctx, prompt)
}

// SourceShare is one row of the earnings-by-source breakdown.
type SourceShare struct {
	Source  string
	Amount  float64
	Percent int
}

// MonthBar is one bar of the monthly earnings chart, Height in percent.
type MonthBar struct {
	Month  string
	Amount float64
	Height float64
}

type Breakdown struct {
	Sources []SourceShare
	Months  []MonthBar
}

var breakdownSources = []string{models.SourceViews, models.SourceSubscriptions, models.SourceDonations}

// BreakdownOf computes the dashboard chart figures. Source shares are whole
// percents of the total; bar heights are relative to the best month and never
// below minBarHeight.
func BreakdownOf(stats *models.DashboardStats) Breakdown {
	var b Breakdown
	if stats == nil {
		return b
	}

	total := 0.0
	for _, v := range stats.EarningsBySource {
		total += v
	}
	if total == 0 {
		total = 1
	}
	for _, src := range breakdownSources {
		amount := stats.EarningsBySource[src]
		b.Sources = append(b.Sources, SourceShare{
			Source:  src,
			Amount:  amount,
			Percent: int(math.Round(amount / total * 100)),
		})
	}

	maxAmount := 1.0
	for _, m := range stats.MonthlyEarnings {
		maxAmount = math.Max(maxAmount, m.Amount)
	}
	for _, m := range stats.MonthlyEarnings {
		b.Months = append(b.Months, MonthBar{
			Month:  m.Month,
			Amount: m.Amount,
			Height: math.Max(m.Amount/maxAmount*100, minBarHeight),
		})
	}

	return b
}

// FormatMoney renders an amount in roubles with space-grouped thousands and
// at most two decimals, e.g. "12 345,5 ₽".
func FormatMoney(amount float64) string {
	neg := amount < 0
	amount = math.Abs(amount)

	s := strconv.FormatFloat(math.Round(amount*100)/100, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(groupThousands(intPart))
	if frac != "" {
		sb.WriteByte(',')
		sb.WriteString(frac)
	}
	sb.WriteString(" ₽")
	return sb.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// FormatCount abbreviates large counts: 999, 12K, 1.5M.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 0, 64) + "K"
	}
	return strconv.FormatInt(n, 10)
}
