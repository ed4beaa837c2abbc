package redisx

import "time"

const (
	// Analytics ranking caches, invalidated by TTL only.
	KeyTopClients = "crm:analytics:top_clients"
	KeyTopSellers = "crm:analytics:top_sellers"
)

var TTLAnalytics = 5 * time.Minute
