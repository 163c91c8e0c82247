package services

import (
	"sort"
	"time"

	"rental-server/models"
)

// RECENT_MESSAGES_LIMIT caps the conversations shown on the dashboard.
const RECENT_MESSAGES_LIMIT = 3

type DashboardService struct {
	seed           *models.DashboardSeed
	listingService *ListingService
	inboxService   *InboxService
}

func NewDashboardService(seed *models.DashboardSeed, listingService *ListingService, inboxService *InboxService) *DashboardService {
	if seed == nil {
		seed = &models.DashboardSeed{}
	}
	return &DashboardService{
		seed:           seed,
		listingService: listingService,
		inboxService:   inboxService,
	}
}

// Dashboard splits bookings around now: stays checking in today or later are
// upcoming (soonest first), the rest are past (most recent first).
func (ds *DashboardService) Dashboard(now time.Time) (*models.Dashboard, error) {
	today := models.DateOf(now)

	upcoming := []models.Booking{}
	past := []models.Booking{}
	for _, b := range ds.seed.Bookings {
		if b.CheckIn.Before(today) {
			past = append(past, b)
		} else {
			upcoming = append(upcoming, b)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].CheckIn.Before(upcoming[j].CheckIn) })
	sort.SliceStable(past, func(i, j int) bool { return past[i].CheckIn.After(past[j].CheckIn) })

	conversations, err := ds.inboxService.ListConversations()
	if err != nil {
		return nil, err
	}
	unread := 0
	for _, c := range conversations {
		if c.Unread {
			unread++
		}
	}
	if len(conversations) > RECENT_MESSAGES_LIMIT {
		conversations = conversations[:RECENT_MESSAGES_LIMIT]
	}

	stats, err := ds.listingService.HostStats()
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Profile:          ds.seed.Profile,
		UpcomingBookings: upcoming,
		PastBookings:     past,
		UnreadMessages:   unread,
		RecentMessages:   conversations,
		Stats:            stats,
	}, nil
}
