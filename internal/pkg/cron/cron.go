package cron

import (
	"context"
	"log"
	"sync"
	"time"
)

// ReminderDispatcher 推送到期的提醒，返回推送数量
type ReminderDispatcher interface {
	DispatchReminders(ctx context.Context) (int, error)
}

type Service struct {
	dispatcher ReminderDispatcher
	interval   time.Duration
	stopChan   chan struct{}
	stopOnce   sync.Once
}

func NewService(dispatcher ReminderDispatcher, interval time.Duration) *Service {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Service{
		dispatcher: dispatcher,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}
}

// Start 启动定时任务
func (s *Service) Start() {
	go s.runReminders()
	log.Printf("Cron service started (meditation reminders every %s)", s.interval)
}

// Stop 停止定时任务，可重复调用
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		log.Println("Cron service stopped")
	})
}

// runReminders 按固定间隔检查提醒
func (s *Service) runReminders() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.dispatch()
		}
	}
}

func (s *Service) dispatch() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	sent, err := s.dispatcher.DispatchReminders(ctx)
	if err != nil {
		log.Printf("Failed to dispatch meditation reminders: %v", err)
		return
	}
	if sent > 0 {
		log.Printf("Meditation reminders sent: %d", sent)
	}
}

// RunNow 立即检查一次提醒（用于测试或手动触发）
func (s *Service) RunNow(ctx context.Context) (int, error) {
	log.Println("Manual reminder dispatch triggered...")
	return s.dispatcher.DispatchReminders(ctx)
}
