package services_test

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/async-pool-agent/internal/models"
	"github.com/kubev2v/async-pool-agent/internal/services"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

var _ = Describe("AsyncService", func() {
	var (
		p    *pool.Pool
		sink *recordingSink
	)

	BeforeEach(func() {
		sink = &recordingSink{}

		var err error
		p, err = pool.New(pool.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		p.Close()
	})

	It("should return before the work completes", func() {
		s := services.NewAsyncService(p, sink, 200*time.Millisecond)

		start := time.Now()
		s.FireAndForget("requestData-index = 7")
		Expect(time.Since(start)).To(BeNumerically("<", 100*time.Millisecond))

		Expect(sink.Events()).To(BeEmpty())
		Eventually(sink.Messages, 2*time.Second).Should(ContainElement("requestData-index = 7"))
	})

	It("should log the payload from a pool worker", func() {
		s := services.NewAsyncService(p, sink, 0)

		s.FireAndForget("hello")

		Eventually(sink.Events, 2*time.Second).Should(HaveLen(1))
		e := sink.Events()[0]
		Expect(e.Level).To(Equal(models.EventLevelInfo))
		Expect(strings.HasPrefix(e.Fields.Worker, "async-thread-")).To(BeTrue())
	})

	It("should drop the log line silently when the pool discards the task", func() {
		p.Close()
		cfg := pool.DefaultConfig()
		cfg.CoreSize = 1
		cfg.MaxSize = 1
		cfg.QueueCapacity = 0
		var err error
		p, err = pool.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		s := services.NewAsyncService(p, sink, 300*time.Millisecond)
		s.FireAndForget("kept")
		s.FireAndForget("dropped")

		Eventually(sink.Messages, 2*time.Second).Should(ContainElement("kept"))
		Consistently(sink.Messages, 200*time.Millisecond).ShouldNot(ContainElement("dropped"))
		Expect(p.Stats().Rejected).To(Equal(uint64(1)))
	})
})

var _ = Describe("AsyncReturnService", func() {
	var (
		p    *pool.Pool
		sink *recordingSink
	)

	BeforeEach(func() {
		sink = &recordingSink{}

		var err error
		p, err = pool.New(pool.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		p.Close()
	})

	It("should resolve each request independently", func() {
		s := services.NewAsyncReturnService(p, sink, func(ctx context.Context, label, param string) (int, error) {
			return len(param), nil
		})

		f1 := s.RequestURL1("index = 1")
		f2 := s.RequestURL2("index = 22")
		f3 := s.RequestURL3("index = 333")

		for want, f := range map[int]*pool.Future[int]{9: f1, 10: f2, 11: f3} {
			v, err := f.Await(context.Background(), 2*time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(want))
		}

		Eventually(sink.Events, time.Second).Should(HaveLen(3))
		for _, e := range sink.Events() {
			Expect(e.Fields.Param).To(HavePrefix("index = "))
			Expect(e.Fields.Result).NotTo(BeNil())
		}
	})

	It("should answer with values below ten from the simulated remote", func() {
		s := services.NewAsyncReturnService(p, sink, services.SimulatedRemote(10*time.Millisecond))

		for i := 0; i < 10; i++ {
			v, err := s.Call("sample", "index = 1").Await(context.Background(), 2*time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNumerically(">=", 0))
			Expect(v).To(BeNumerically("<", 10))
		}
	})

	It("should surface an interrupted simulated call as an error", func() {
		s := services.NewAsyncReturnService(p, sink, services.SimulatedRemote(time.Hour))

		f := s.Call("slow", "index = 1")
		time.Sleep(20 * time.Millisecond)
		f.Stop()

		_, err := f.Await(context.Background(), 2*time.Second)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("interrupted"))
	})
})
