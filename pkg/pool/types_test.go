package pool_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errs "github.com/kubev2v/async-pool-agent/pkg/errors"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

var _ = Describe("Future", func() {
	var (
		p       *pool.Pool
		release chan struct{}
	)

	BeforeEach(func() {
		release = make(chan struct{})
		p = newPool(pool.DefaultConfig())
	})

	AfterEach(func() {
		close(release)
		p.Close()
	})

	It("should report a timeout without resolving the future", func() {
		future := pool.Submit(p, "slow", blocking(release, 1))

		_, err := future.Await(context.Background(), 50*time.Millisecond)
		Expect(errs.IsTimeoutError(err)).To(BeTrue())

		_, resolved := future.Result()
		Expect(resolved).To(BeFalse())
	})

	It("should report an interrupted wait when the waiting context ends", func() {
		future := pool.Submit(p, "slow", blocking(release, 1))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := future.Await(ctx, time.Second)
		Expect(errs.IsInterruptedWaitError(err)).To(BeTrue())
	})

	It("should cancel the task context on Stop", func() {
		cancelled := make(chan bool, 1)
		future := pool.Submit(p, "cancellable", func(ctx context.Context) (int, error) {
			select {
			case <-ctx.Done():
				cancelled <- true
				return 0, ctx.Err()
			case <-time.After(5 * time.Second):
				return 1, nil
			}
		})

		time.Sleep(50 * time.Millisecond)
		future.Stop()

		Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		_, err := future.Await(context.Background(), time.Second)
		Expect(errs.IsExecutionError(err)).To(BeTrue())
	})

	It("should give every future a distinct id", func() {
		a := pool.Submit(p, "a", blocking(release, 1))
		b := pool.Submit(p, "b", blocking(release, 2))

		Expect(a.ID()).NotTo(Equal(b.ID()))
		Expect(a.Name()).To(Equal("a"))
	})
})
