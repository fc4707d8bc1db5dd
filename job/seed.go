package job

import (
	"time"

	"fixify/geo"
)

// seedJobs is the starter data written to an empty jobs slot so a fresh
// deployment has postings to browse.
func seedJobs(now time.Time) []Job {
	return []Job{
		{
			ID:          "job-1",
			Title:       "Fix leaking bathroom sink",
			Description: "The bathroom sink has been leaking for a few days. Need someone to fix it as soon as possible.",
			Category:    "Plumbing",
			Budget:      100,
			Location: geo.Location{
				Point:   geo.Point{Lat: 40.7128, Lng: -74.0060},
				Address: "123 Main St, New York, NY",
			},
			Status:    StatusOpen,
			CreatedAt: now.Add(-24 * time.Hour),
			UserID:    "user-1",
			UserName:  "John Doe",
			UserImage: "https://ui-avatars.com/api/?name=John+Doe&background=random",
		},
		{
			ID:          "job-2",
			Title:       "Install new ceiling fan",
			Description: "Need to replace old ceiling fan with a new one in the living room.",
			Category:    "Electrical",
			Budget:      150,
			Location: geo.Location{
				Point:   geo.Point{Lat: 40.7328, Lng: -73.9860},
				Address: "456 Park Ave, New York, NY",
			},
			Status:    StatusOpen,
			CreatedAt: now.Add(-48 * time.Hour),
			UserID:    "user-2",
			UserName:  "Jane Smith",
			UserImage: "https://ui-avatars.com/api/?name=Jane+Smith&background=random",
		},
		{
			ID:          "job-3",
			Title:       "Build custom bookshelf",
			Description: "Looking for a carpenter to build a custom bookshelf for my living room.",
			Category:    "Carpentry",
			Budget:      300,
			Location: geo.Location{
				Point:   geo.Point{Lat: 40.7428, Lng: -73.9960},
				Address: "789 Broadway, New York, NY",
			},
			Status:      StatusAssigned,
			CreatedAt:   now.Add(-72 * time.Hour),
			UserID:      "user-3",
			UserName:    "Bob Johnson",
			UserImage:   "https://ui-avatars.com/api/?name=Bob+Johnson&background=random",
			WorkerID:    "worker-1",
			WorkerName:  "Mike Wilson",
			WorkerImage: "https://ui-avatars.com/api/?name=Mike+Wilson&background=random",
		},
	}
}
