package mockdata

import (
	"fmt"

	"tripplanr/models"
)

const sampleVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

var sampleVideos = []struct {
	id, title, thumbnail string
}{
	{"video1", "Top 10 Places to Visit in %s", "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?auto=format&fit=crop&w=400&q=80"},
	{"video2", "%s Travel Guide 2024", "https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=400&q=80"},
	{"video3", "Hidden Gems of %s", "https://images.unsplash.com/photo-1488085061387-422e29b40080?auto=format&fit=crop&w=400&q=80"},
}

// ListVideos returns the three stand-in video cards for a destination.
func ListVideos(destination string) []models.VideoCard {
	videos := make([]models.VideoCard, 0, len(sampleVideos))
	for _, v := range sampleVideos {
		videos = append(videos, models.VideoCard{
			ID:        v.id,
			Title:     fmt.Sprintf(v.title, destination),
			Thumbnail: v.thumbnail,
			URL:       sampleVideoURL,
		})
	}
	return videos
}

// ListAttractions returns the five stand-in attraction cards for a destination.
func ListAttractions(destination string) []models.AttractionCard {
	d := destination
	return []models.AttractionCard{
		{
			Name:        d + " Historical Museum",
			Description: "The " + d + " Historical Museum showcases the rich cultural heritage and history of the region through artifacts, photographs, and interactive exhibits.",
			Image:       "https://images.unsplash.com/photo-1582034986517-30d382307847?auto=format&fit=crop&w=400&q=80",
			Address:     "123 Museum Street, " + d,
			Categories:  []string{"museums", "cultural"},
		},
		{
			Name:        d + " Central Park",
			Description: "A beautiful green space in the heart of " + d + ", perfect for relaxation, picnics, and outdoor activities.",
			Image:       "https://images.unsplash.com/photo-1501785888041-af3ef285b470?auto=format&fit=crop&w=400&q=80",
			Address:     "Central District, " + d,
			Categories:  []string{"parks", "nature"},
		},
		{
			Name:        d + " Market",
			Description: "Experience local life at this vibrant market where you can find fresh produce, handicrafts, and street food.",
			Image:       "https://images.unsplash.com/photo-1513125370-3460ebe3401b?auto=format&fit=crop&w=400&q=80",
			Address:     "Market Street, " + d,
			Categories:  []string{"markets", "food"},
		},
		{
			Name:        d + " Temple",
			Description: "An ancient temple with stunning architecture and spiritual significance.",
			Image:       "https://images.unsplash.com/photo-1570168007204-dfb528c6958f?auto=format&fit=crop&w=400&q=80",
			Address:     "Temple Road, " + d,
			Categories:  []string{"religion", "architecture"},
		},
		{
			Name:        d + " Beach",
			Description: "A pristine beach with crystal clear waters and golden sands, perfect for swimming and sunbathing.",
			Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?auto=format&fit=crop&w=400&q=80",
			Address:     "Coastal Area, " + d,
			Categories:  []string{"beaches", "nature"},
		},
	}
}
