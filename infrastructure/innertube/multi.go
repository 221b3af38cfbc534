package innertube

import (
	"context"
	"sync"

	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/domain/repository"
	"github.com/erievs/FourthTube/infrastructure/logger"

	"golang.org/x/sync/semaphore"
)

// LoadChannelPages fetches every channel page with at most MaxConcurrent
// requests in flight. Results line up with channelIDs by index; a failed
// target still occupies its slot with Error set so the caller can tell which
// channel it was. progress fires once per finished fetch, in completion order.
func (c *Client) LoadChannelPages(ctx context.Context, channelIDs []string, progress repository.ProgressFunc) []model.ChannelDetail {
	results := make([]model.ChannelDetail, len(channelIDs))
	total := len(channelIDs)
	if progress != nil {
		progress(0, total)
	}
	if total == 0 {
		return results
	}

	bound := int64(c.cfg.MaxConcurrent)
	if bound <= 1 {
		for i, id := range channelIDs {
			results[i] = c.LoadChannelPage(ctx, id)
			if results[i].ID == "" {
				results[i].ID = id
			}
			if progress != nil {
				progress(i+1, total)
			}
		}
		return results
	}

	sem := semaphore.NewWeighted(bound)
	var wg sync.WaitGroup
	var mu sync.Mutex
	completed := 0

	for i, id := range channelIDs {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Context gone; remaining targets fail in place.
			results[i] = model.ChannelDetail{Error: "[multi] " + err.Error()}
			results[i].ID = id
			mu.Lock()
			completed++
			if progress != nil {
				progress(completed, total)
			}
			mu.Unlock()
			continue
		}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = c.LoadChannelPage(ctx, id)
			if results[i].ID == "" {
				results[i].ID = id
			}
			mu.Lock()
			completed++
			if progress != nil {
				progress(completed, total)
			}
			mu.Unlock()
		}(i, id)
	}
	wg.Wait()

	failed := 0
	for i := range results {
		if results[i].Error != "" {
			failed++
		}
	}
	if failed > 0 {
		logger.GetLogger().WithFields(map[string]interface{}{"total": total, "failed": failed}).Warn("some channel pages failed to load")
	}
	return results
}
