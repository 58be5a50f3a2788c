package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/async-pool-agent/internal/services"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

var _ = Describe("TaskService", func() {
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

	It("should dispatch a fire-and-forget payload on RequestData", func() {
		async := services.NewAsyncService(p, sink, 0)
		t := services.NewTaskService(async, nil)

		t.RequestData(context.Background())

		Eventually(sink.Messages, 2*time.Second).Should(ContainElement(HavePrefix("requestData-index = ")))
	})

	It("should return normally when the round fails", func() {
		remote := func(ctx context.Context, label, param string) (int, error) {
			panic("remote exploded")
		}
		caller := services.NewAsyncReturnService(p, sink, remote)
		coordinator := services.NewJoinCoordinator(caller, p, sink, time.Second, time.Second)
		t := services.NewTaskService(nil, coordinator)

		Expect(func() { t.RequestReturnData(context.Background()) }).NotTo(Panic())
		Expect(sink.Rounds()).To(HaveLen(1))
		Expect(sink.Rounds()[0].Succeeded).To(BeFalse())
	})

	It("should recover when the handler itself panics", func() {
		t := services.NewTaskService(nil, nil)

		Expect(func() { t.RequestData(context.Background()) }).NotTo(Panic())
		Expect(func() { t.RequestReturnData(context.Background()) }).NotTo(Panic())
	})
})
