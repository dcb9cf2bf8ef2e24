package searchcore

import (
	"github.com/connecthub/searchcore/internal/domain/entity"
	domhist "github.com/connecthub/searchcore/internal/domain/history"
	domsaved "github.com/connecthub/searchcore/internal/domain/saved"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
	"github.com/connecthub/searchcore/internal/domain/search/result"
	domsuggest "github.com/connecthub/searchcore/internal/domain/suggest"
	insightsuc "github.com/connecthub/searchcore/internal/usecase/insights"
)

func toInternalUpdate(u FilterUpdate) filter.Update {
	var out filter.Update
	if u.Type != nil {
		t := filter.Type(*u.Type)
		out.Type = &t
	}
	out.Location = u.Location
	if u.DateRange != nil {
		out.DateRange = &filter.DateRange{Start: u.DateRange.Start, End: u.DateRange.End}
	}
	if u.SortBy != nil {
		sb := filter.Sort(*u.SortBy)
		out.SortBy = &sb
	}
	out.RadiusKm = u.RadiusKm
	return out
}

func toInternalFilters(f Filters) filter.Filters {
	out := filter.Filters{
		Type:     filter.Type(f.Type),
		Location: f.Location,
		SortBy:   filter.Sort(f.SortBy),
		RadiusKm: f.RadiusKm,
	}
	if f.DateRange != nil {
		out.DateRange = &filter.DateRange{Start: f.DateRange.Start, End: f.DateRange.End}
	}
	return out
}

func fromInternalFilters(f filter.Filters) Filters {
	out := Filters{
		Type:     SearchType(f.Type),
		Location: f.Location,
		SortBy:   SortOrder(f.SortBy),
		RadiusKm: f.RadiusKm,
	}
	if f.DateRange != nil {
		out.DateRange = &DateRange{Start: f.DateRange.Start, End: f.DateRange.End}
	}
	return out
}

func fromCoords(c *entity.Coordinates) *Coordinates {
	if c == nil {
		return nil
	}
	return &Coordinates{Lat: c.Lat, Lng: c.Lng}
}

func fromPerson(p entity.Person) Person {
	return Person{
		ID:            p.ID,
		DisplayName:   p.DisplayName,
		Handle:        p.Handle,
		Location:      p.LocationText,
		Coords:        fromCoords(p.Coords),
		Interests:     p.Interests,
		Workplace:     p.Workplace,
		Verified:      p.Verified,
		FollowerCount: p.FollowerCount,
	}
}

func fromPost(p entity.Post) Post {
	return Post{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Text:      p.Text,
		Hashtags:  p.Hashtags,
		LikeCount: p.LikeCount,
		CreatedAt: p.CreatedAt,
	}
}

func fromGroup(g entity.Group) Group {
	return Group{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		MemberCount: g.MemberCount,
		Category:    g.Category,
		Location:    g.LocationText,
		Coords:      fromCoords(g.Coords),
	}
}

func fromEvent(e entity.Event) Event {
	return Event{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Location:      e.LocationText,
		Coords:        fromCoords(e.Coords),
		Date:          e.Date,
		AttendeeCount: e.AttendeeCount,
		Category:      e.Category,
	}
}

func fromMarketplaceItem(m entity.MarketplaceItem) MarketplaceItem {
	return MarketplaceItem{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		Location:    m.LocationText,
		Coords:      fromCoords(m.Coords),
		SellerID:    m.SellerID,
		Rating:      m.Rating,
	}
}

func fromHashtag(h entity.Hashtag) Hashtag {
	return Hashtag{Tag: h.Tag, PostCount: h.PostCount, Trending: h.Trending}
}

func fromLocation(l entity.Location) Location {
	return Location{
		ID:         l.ID,
		Name:       l.Name,
		Type:       l.Type,
		Country:    l.Country,
		Lat:        l.Lat,
		Lng:        l.Lng,
		Population: l.Population,
	}
}

func mapSlice[I, O any](in []I, conv func(I) O) []O {
	if in == nil {
		return nil
	}
	out := make([]O, len(in))
	for i, v := range in {
		out[i] = conv(v)
	}
	return out
}

func fromBundle(b result.Bundle) Results {
	return Results{
		People:      mapSlice(b.People, fromPerson),
		Posts:       mapSlice(b.Posts, fromPost),
		Groups:      mapSlice(b.Groups, fromGroup),
		Events:      mapSlice(b.Events, fromEvent),
		Marketplace: mapSlice(b.Marketplace, fromMarketplaceItem),
		Hashtags:    mapSlice(b.Hashtags, fromHashtag),
		Locations:   mapSlice(b.Locations, fromLocation),
		Total:       b.Total,
	}
}

func fromWithDistance[I, O any](in []result.WithDistance[I], conv func(I) O) []Nearby[O] {
	if in == nil {
		return nil
	}
	out := make([]Nearby[O], len(in))
	for i, v := range in {
		out[i] = Nearby[O]{Item: conv(v.Entity), DistanceKm: v.DistanceKm}
	}
	return out
}

func fromNearbyBundle(b result.NearbyBundle) NearbyResults {
	return NearbyResults{
		People:      fromWithDistance(b.People, fromPerson),
		Groups:      fromWithDistance(b.Groups, fromGroup),
		Events:      fromWithDistance(b.Events, fromEvent),
		Marketplace: fromWithDistance(b.Marketplace, fromMarketplaceItem),
		Locations:   fromWithDistance(b.Locations, fromLocation),
		Total:       b.Total,
	}
}

func fromSuggestion(s domsuggest.Suggestion) Suggestion {
	return Suggestion{
		Kind:        string(s.Kind),
		DisplayText: s.DisplayText,
		Subtext:     s.Subtext,
		Icon:        s.Icon,
		SourceID:    s.SourceID,
	}
}

func fromHistoryEntry(e domhist.Entry) HistoryEntry {
	return HistoryEntry{Query: e.Query, Timestamp: e.Timestamp, ResultCount: e.ResultCount}
}

func fromSavedSearch(s domsaved.Search) SavedSearch {
	return SavedSearch{
		ID:                   s.ID,
		Query:                s.Query,
		Filters:              fromInternalFilters(s.Filters),
		CreatedAt:            s.CreatedAt,
		NotificationsEnabled: s.NotificationsEnabled,
	}
}

func fromPreset(p domsaved.Preset) FilterPreset {
	return FilterPreset{
		ID:        p.ID,
		Name:      p.Name,
		Filters:   fromInternalFilters(p.Filters),
		CreatedAt: p.CreatedAt,
	}
}

func fromInsights(b insightsuc.Bundle) InsightsReport {
	return InsightsReport{
		PopularSearches: mapSlice(b.PopularSearches, func(q insightsuc.QueryCount) QueryCount {
			return QueryCount{Query: q.Query, Count: q.Count}
		}),
		RecommendedSearches: b.RecommendedSearches,
		Patterns: SearchPatterns{
			MostActiveDay:         b.Patterns.MostActiveDay,
			AverageSearchesPerDay: b.Patterns.AverageSearchesPerDay,
			TotalDays:             b.Patterns.TotalDays,
		},
		PeakHours: mapSlice(b.PeakHours, func(h insightsuc.HourCount) HourCount {
			return HourCount{Hour: h.Hour, Count: h.Count}
		}),
		Categories: mapSlice(b.Categories, func(c insightsuc.CategoryCount) CategoryCount {
			return CategoryCount{Category: c.Category, Count: c.Count}
		}),
		Recommendations: mapSlice(b.Recommendations, func(r insightsuc.Recommendation) Recommendation {
			return Recommendation{Type: r.Type, Message: r.Message, Action: r.Action}
		}),
	}
}
