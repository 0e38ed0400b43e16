/*
Package feed contains the community feed: seeded mock posts and the optimistic
like/repost toggles.

Posts live only in memory and reset on restart. Counters move in lock-step with
their boolean flags; there is no server-side reconciliation because there is no
backing server state to reconcile against.
*/
package feed

import (
	"sync"

	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/optimistic"
)

// Author identifies who wrote a post. Doctors carry a verified badge.
type Author struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
	UserType string `json:"userType"`
}

// Post is one community feed entry.
type Post struct {
	ID         string `json:"id"`
	Author     Author `json:"author"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	TimeAgo    string `json:"timeAgo"`
	Likes      int    `json:"likes"`
	Comments   int    `json:"comments"`
	Reposts    int    `json:"reposts"`
	IsLiked    bool   `json:"isLiked"`
	IsReposted bool   `json:"isReposted"`
	Trending   bool   `json:"trending,omitempty"`
}

// DailyQuote is the motivational line shown above the feed.
const DailyQuote = "Health is not about the weight you lose, but about the life you gain."

// seedPosts returns the feed's initial mock content.
func seedPosts() []Post {
	return []Post{
		{
			ID: "1",
			Author: Author{
				Name:     "Dr. Sarah Johnson",
				Avatar:   "/placeholder.svg?height=40&width=40&text=SJ",
				Verified: true,
				UserType: "doctor",
			},
			Content:  "Just completed a fascinating study on the benefits of morning meditation for cardiovascular health. The results show a 23% improvement in heart rate variability among participants who meditated for just 10 minutes daily. Mental health truly impacts physical wellness! 🧘‍♀️",
			Category: "Cardiology",
			TimeAgo:  "2h",
			Likes:    127, Comments: 23, Reposts: 15,
			IsLiked: false, IsReposted: false,
			Trending: true,
		},
		{
			ID: "2",
			Author: Author{
				Name:     "Mike Chen",
				Avatar:   "/placeholder.svg?height=40&width=40&text=MC",
				Verified: false,
				UserType: "user",
			},
			Content:  "Has anyone tried the new intermittent fasting approach? I have been doing 16:8 for 3 months now and feeling amazing. Lost 15 pounds and my energy levels are through the roof! Would love to hear your experiences.",
			Category: "Nutrition",
			TimeAgo:  "4h",
			Likes:    89, Comments: 34, Reposts: 8,
			IsLiked: true, IsReposted: false,
		},
		{
			ID: "3",
			Author: Author{
				Name:     "Dr. Priya Patel",
				Avatar:   "/placeholder.svg?height=40&width=40&text=PP",
				Verified: true,
				UserType: "doctor",
			},
			Content:  "Reminder: Regular skin checks are crucial for early detection of skin cancer. Look for changes in moles using the ABCDE rule - Asymmetry, Border, Color, Diameter, Evolving. Schedule your annual dermatology appointment today!",
			Category: "Dermatology",
			TimeAgo:  "6h",
			Likes:    203, Comments: 12, Reposts: 45,
			IsLiked: false, IsReposted: true,
		},
	}
}

// Store owns the feed's post slice. Updates are copy-on-write under the mutex
// so readers always see a consistent snapshot.
type Store struct {
	mu    sync.RWMutex
	posts []Post
}

// NewStore seeds a feed store with the mock posts.
func NewStore() *Store {
	return &Store{posts: seedPosts()}
}

// Posts returns a snapshot of the current feed.
func (s *Store) Posts() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Post returns a snapshot of a single post.
func (s *Store) Post(postID string) (*Post, *errs.CustomError) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].ID == postID {
			p := s.posts[i]
			return &p, nil
		}
	}

	return nil, errs.NewError(errs.ErrPostNotFound)
}

// ToggleLike flips the like flag of the given post and moves its like counter
// in lock-step. Returns the updated post.
func (s *Store) ToggleLike(postID string) (*Post, *errs.CustomError) {
	return s.toggle(postID, func(p *Post) {
		p.IsLiked, p.Likes = optimistic.Toggle(p.IsLiked, p.Likes)
	})
}

// ToggleRepost flips the repost flag of the given post and moves its repost
// counter in lock-step. Returns the updated post.
func (s *Store) ToggleRepost(postID string) (*Post, *errs.CustomError) {
	return s.toggle(postID, func(p *Post) {
		p.IsReposted, p.Reposts = optimistic.Toggle(p.IsReposted, p.Reposts)
	})
}

func (s *Store) toggle(postID string, apply func(*Post)) (*Post, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Post, len(s.posts))
	copy(next, s.posts)

	for i := range next {
		if next[i].ID == postID {
			apply(&next[i])
			s.posts = next

			updated := next[i]
			return &updated, nil
		}
	}

	return nil, errs.NewError(errs.ErrPostNotFound)
}
