package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vidwave/internal/client/models"
	"github.com/dmitrijs2005/vidwave/internal/client/services"
)

const chartWidth = 30

var sourceLabels = map[string]string{
	models.SourceViews:         "Views",
	models.SourceSubscriptions: "Subscriptions",
	models.SourceDonations:     "Donations",
}

func (a *App) Stats(ctx context.Context) error {
	stats, err := a.studioService.Stats(ctx)
	if err != nil {
		return err
	}
	a.printStats(stats)
	return nil
}

func (a *App) printStats(stats *models.DashboardStats) {
	ch := stats.Channel
	fmt.Fprintf(a.out, "Channel: %s\n", ch.Name)
	if ch.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", ch.Description)
	}
	fmt.Fprintf(a.out, "Subscribers: %s (+%d in 30 days)\n", services.FormatCount(ch.Subscribers), stats.NewSubscribers30d)
	fmt.Fprintf(a.out, "Total views: %s\n", services.FormatCount(ch.TotalViews))
	fmt.Fprintf(a.out, "Total earned: %s\n", services.FormatMoney(ch.TotalEarnings))

	b := services.BreakdownOf(stats)

	fmt.Fprintln(a.out, "\nEarnings by source:")
	for _, s := range b.Sources {
		fmt.Fprintf(a.out, "  %-14s %14s %3d%%\n", sourceLabels[s.Source], services.FormatMoney(s.Amount), s.Percent)
	}

	if len(b.Months) > 0 {
		fmt.Fprintln(a.out, "\nMonthly earnings:")
		for _, m := range b.Months {
			bar := strings.Repeat("#", int(m.Height/100*chartWidth+0.5))
			fmt.Fprintf(a.out, "  %-8s %-*s %s\n", m.Month, chartWidth, bar, services.FormatMoney(m.Amount))
		}
	}

	fmt.Fprintln(a.out, "\nVideos:")
	if len(stats.Videos) == 0 {
		fmt.Fprintln(a.out, "  none yet, use upload")
		return
	}
	for _, v := range stats.Videos {
		fmt.Fprintf(a.out, "  %s  %s views, %d likes, %d comments, %s\n",
			v.Title, services.FormatCount(v.Views), v.Likes, v.Comments, services.FormatMoney(v.Earnings))
	}
}

// Upload prompts for the video fields and publishes it. A category may be
// given by name or by its number in the list.
func (a *App) Upload(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Video title", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	thumb, err := getSimpleText(a.reader, "Thumbnail URL (optional, see the thumbnail command)", a.out)
	if err != nil {
		return err
	}
	category, err := getChoice(a.reader, "Category (empty for "+services.DefaultCategory+"):", services.Categories, a.out)
	if err != nil {
		return err
	}

	res, err := a.studioService.Upload(ctx, services.UploadInput{
		Title:        title,
		Description:  description,
		ThumbnailURL: thumb,
		Category:     category,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Published, video id %s\n", res.VideoID)
	return nil
}

// Thumbnail generates a cover. Without a prompt the suggestions are listed
// and one may be picked by number; an empty answer cancels.
func (a *App) Thumbnail(ctx context.Context, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		answer, err := getChoice(a.reader, "Describe the thumbnail, or pick a suggestion:", services.ThumbnailSuggestions, a.out)
		if err != nil {
			return err
		}
		if answer == "" {
			return nil
		}
		prompt = answer
	}

	fmt.Fprintln(a.out, "Generating...")
	th, err := a.studioService.GenerateThumbnail(ctx, prompt)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Thumbnail: %s\n", th.URL)
	return nil
}
