package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetDeleteJobStatus(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	payload := []byte(`{"video_id":"vid_1","state":"completed"}`)

	// 1) Cache miss
	got, err := c.GetJobStatus(ctx, "vid_1")
	if err != nil {
		t.Fatalf("GetJobStatus miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetJobStatus miss: got %q; want nil", got)
	}

	// 2) Set + Get
	c.SetJobStatus(ctx, "vid_1", payload)
	if ttl := mr.TTL(getCacheKey("vid_1", false)); ttl <= 0 || ttl > terminalTTL {
		t.Errorf("redis TTL = %v; want (0, %v]", ttl, terminalTTL)
	}
	got, err = c.GetJobStatus(ctx, "vid_1")
	if err != nil {
		t.Fatalf("GetJobStatus hit: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("GetJobStatus hit = %q; want %q", got, payload)
	}

	// 3) Delete
	if err := c.DeleteJobStatus(ctx, "vid_1"); err != nil {
		t.Fatalf("DeleteJobStatus: %v", err)
	}
	got, err = c.GetJobStatus(ctx, "vid_1")
	if err != nil {
		t.Fatalf("GetJobStatus after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss after delete, got %q", got)
	}
}

func TestGetSetDeleteEtagJobStatus(t *testing.T) {
	c, _ := makeTestCache(t)
	ctx := context.Background()

	etag, err := c.GetEtagJobStatus(ctx, "vid_2")
	if err != nil {
		t.Fatalf("GetEtagJobStatus miss: %v", err)
	}
	if etag != "" {
		t.Errorf("expected empty etag on miss, got %q", etag)
	}

	c.SetEtagJobStatus(ctx, "vid_2", "abcd1234")
	etag, err = c.GetEtagJobStatus(ctx, "vid_2")
	if err != nil {
		t.Fatalf("GetEtagJobStatus hit: %v", err)
	}
	if etag != "abcd1234" {
		t.Errorf("etag = %q; want %q", etag, "abcd1234")
	}

	if err := c.DeleteEtagJobStatus(ctx, "vid_2"); err != nil {
		t.Fatalf("DeleteEtagJobStatus: %v", err)
	}
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	c.SetJobStatus(ctx, "vid_3", []byte(`{}`))
	mr.FastForward(terminalTTL + time.Second)

	got, err := c.GetJobStatus(ctx, "vid_3")
	if err != nil {
		t.Fatalf("GetJobStatus: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss after TTL, got %q", got)
	}
}
