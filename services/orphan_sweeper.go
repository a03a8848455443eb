package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/DandaAkhilReddy/reddyfit-backend/utils"
)

// imageURLSource is the slice of MealRecordStore the sweeper reads.
type imageURLSource interface {
	ImageURLs(ctx context.Context, userID uint) ([]string, error)
}

// OrphanSweeper deletes uploaded meal images that no record references.
// A pipeline run that fails between the image upload and the record write
// leaves such a blob behind; rather than attempting cross-store atomicity,
// the sweep reclaims them after a grace period. The grace period keeps the
// sweep from racing an in-flight pipeline whose record write has not landed
// yet.
type OrphanSweeper struct {
	images  utils.ImageStore
	records imageURLSource
	grace   time.Duration
	now     func() time.Time
}

func NewOrphanSweeper(images utils.ImageStore, records imageURLSource, grace time.Duration) *OrphanSweeper {
	if grace <= 0 {
		grace = time.Hour
	}
	return &OrphanSweeper{images: images, records: records, grace: grace, now: time.Now}
}

// Sweep removes the user's unreferenced blobs older than the grace period
// and returns how many were deleted.
func (s *OrphanSweeper) Sweep(ctx context.Context, userID uint) (int, error) {
	prefix := fmt.Sprintf("meals/%d/", userID)
	objects, err := s.images.ListPrefix(ctx, prefix)
	if err != nil {
		return 0, err
	}
	if len(objects) == 0 {
		return 0, nil
	}

	urls, err := s.records.ImageURLs(ctx, userID)
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		referenced[u] = struct{}{}
	}

	cutoff := s.now().Add(-s.grace)
	deleted := 0
	for _, obj := range objects {
		if obj.LastModified.After(cutoff) {
			continue
		}
		if _, ok := referenced[s.images.URLFor(obj.Key)]; ok {
			continue
		}
		if err := s.images.Delete(ctx, obj.Key); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// RunPeriodic sweeps every user returned by listUsers on the given interval
// until the context is cancelled.
func (s *OrphanSweeper) RunPeriodic(ctx context.Context, interval time.Duration, listUsers func(context.Context) ([]uint, error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			users, err := listUsers(ctx)
			if err != nil {
				log.Printf("orphan sweep: listing users: %v", err)
				continue
			}
			for _, uid := range users {
				if n, err := s.Sweep(ctx, uid); err != nil {
					log.Printf("orphan sweep: user %d: %v", uid, err)
				} else if n > 0 {
					log.Printf("orphan sweep: user %d: removed %d blobs", uid, n)
				}
			}
		}
	}
}
