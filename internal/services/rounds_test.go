package services_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/async-pool-agent/internal/metrics"
	"github.com/kubev2v/async-pool-agent/internal/models"
	"github.com/kubev2v/async-pool-agent/internal/services"
	"github.com/kubev2v/async-pool-agent/internal/store"
	"github.com/kubev2v/async-pool-agent/internal/store/migrations"
	srvErrors "github.com/kubev2v/async-pool-agent/pkg/errors"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

var _ = Describe("RoundService", func() {
	var (
		ctx context.Context
		db  *sql.DB
		s   *store.Store
		p   *pool.Pool
		srv *services.RoundService
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(store.MemoryDSN)
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())
		s = store.NewStore(db)

		p, err = pool.New(pool.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())

		sink := metrics.NewStoreSink(s.Rounds())
		caller := services.NewAsyncReturnService(p, sink, fixedRemote(map[string]int{
			services.LabelRequest1: 1,
			services.LabelRequest2: 2,
			services.LabelRequest3: 3,
		}))
		coordinator := services.NewJoinCoordinator(caller, p, sink, time.Second, time.Second)
		srv = services.NewRoundService(s.Rounds(), coordinator)
	})

	AfterEach(func() {
		p.Close()
		if db != nil {
			db.Close()
		}
	})

	// Given a round run on demand
	// When the history is read back
	// Then the same round is listed, fetched and summarized
	It("should record rounds it runs", func() {
		round, err := srv.Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(round.Sum).To(Equal(6))

		got, err := srv.Get(ctx, round.RoundID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Sum).To(Equal(6))
		Expect(got.Slots).To(HaveLen(3))

		summary, err := srv.Summary(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Total).To(Equal(1))
		Expect(summary.Succeeded).To(Equal(1))
	})

	It("should report the filtered total independent of the page", func() {
		for i := range 4 {
			r := &models.AggregateResult{RoundID: uuid.New(), StartedAt: time.Now(), Succeeded: i != 0}
			Expect(s.Rounds().Save(ctx, r)).To(Succeed())
		}
		succeeded := true

		result, err := srv.List(ctx, services.RoundListParams{Succeeded: &succeeded, Limit: 2})

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).To(Equal(3))
		Expect(result.Rounds).To(HaveLen(2))
	})

	It("should return not found for an unknown round", func() {
		_, err := srv.Get(ctx, uuid.New())

		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})
})
