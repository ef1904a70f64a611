package reading

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/qs3c/soultria_server/internal/profile"
)

// maxConcurrentSystems 同一次占卜并发请求模型的上限
const maxConcurrentSystems = 4

// Session 一次多体系占卜的结果
type Session struct {
	Readings map[Kind]Result `json:"readings"`
	Combined *Result         `json:"combined,omitempty"`
}

// GenerateSession 并发生成各体系解读，多于一个体系时再追加综合解读
//
// 各体系共用同一个超时窗口，整体耗时不超过两次单独生成的超时。
func (g *Generator) GenerateSession(ctx context.Context, reqs []Request, question string, p *profile.Result) Session {
	s := Session{Readings: make(map[Kind]Result, len(reqs))}
	systems := make([]Kind, 0, len(reqs))

	var (
		mu  sync.Mutex
		grp errgroup.Group
	)
	grp.SetLimit(maxConcurrentSystems)
	for _, req := range reqs {
		req := req
		systems = append(systems, req.Kind())
		grp.Go(func() error {
			result := g.Generate(ctx, req, p)
			mu.Lock()
			s.Readings[req.Kind()] = result
			mu.Unlock()
			return nil
		})
	}
	_ = grp.Wait()

	if len(reqs) > 1 {
		combined := g.Generate(ctx, CombinedInput{
			Systems:  systems,
			Readings: s.Readings,
			Question: question,
		}, p)
		s.Combined = &combined
	}
	return s
}
