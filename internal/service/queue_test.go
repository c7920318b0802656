package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
	"replydesk.app/server/internal/store"
)

var _ = Describe("QueueService", func() {
	var (
		svc         service.QueueService
		mockQueue   *mockQueueStore
		mockInbound *mockInboundStore
		mockLogs    *mockReplyLogStore
		ctx         context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockQueue = &mockQueueStore{}
		mockInbound = &mockInboundStore{}
		mockLogs = &mockReplyLogStore{}
		svc = service.NewQueueService(mockQueue, mockInbound, mockLogs)
	})

	Describe("Enqueue", func() {
		It("copies DM fields and derives the language", func() {
			mockInbound.getMessageFn = func(_ context.Context, id, userID int64) (*model.InstagramMessage, error) {
				Expect(id).To(Equal(int64(100)))
				Expect(userID).To(Equal(int64(42)))
				return &model.InstagramMessage{
					ID:             100,
					UserID:         42,
					MessageID:      "mid.1",
					ConversationID: "conv.1",
					SenderID:       "s1",
					SenderUsername: logger.Ptr("asiakas"),
					Text:           "Mitä maksaa?",
				}, nil
			}
			var captured *model.QueueItem
			mockQueue.createFn = func(_ context.Context, item *model.QueueItem) error {
				captured = item
				return nil
			}

			item, err := svc.Enqueue(ctx, service.EnqueueParams{
				UserID:     42,
				ItemType:   model.ChannelDM,
				SourceID:   100,
				Suggestion: "Hinta on 10 €, kiitos kysymästä! Tervetuloa käymään.",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(captured).NotTo(BeNil())
			Expect(item.Status).To(Equal(model.QueueStatusPending))
			Expect(item.MessageType).To(Equal(model.ChannelDM))
			Expect(item.MessageID).To(Equal("mid.1"))
			Expect(item.MessageText).To(Equal("Mitä maksaa?"))
			Expect(item.ConversationID).To(HaveValue(Equal("conv.1")))
			Expect(item.DetectedLanguage).To(Equal(model.LanguageFinnish))
			Expect(item.RuleID).To(BeNil())
		})

		It("leaves conversation_id empty for comments", func() {
			mockInbound.getCommentFn = func(_ context.Context, _, _ int64) (*model.InstagramComment, error) {
				return &model.InstagramComment{ID: 5, UserID: 42, CommentID: "c.1", Text: "price?"}, nil
			}

			item, err := svc.Enqueue(ctx, service.EnqueueParams{
				UserID: 42, ItemType: model.ChannelComment, SourceID: 5, Suggestion: "Sent you a DM",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(item.ConversationID).To(BeNil())
			Expect(item.DetectedLanguage).To(Equal(model.LanguageEnglish))
		})

		It("returns ErrSourceNotFound and writes nothing when the source is foreign", func() {
			mockInbound.getMessageFn = func(_ context.Context, _, _ int64) (*model.InstagramMessage, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Enqueue(ctx, service.EnqueueParams{
				UserID: 42, ItemType: model.ChannelDM, SourceID: 100, Suggestion: "hi",
			})

			Expect(err).To(MatchError(service.ErrSourceNotFound))
			Expect(mockQueue.createCalls).To(BeZero())
		})

		It("validates the request before reading the source", func() {
			_, err := svc.Enqueue(ctx, service.EnqueueParams{UserID: 42, ItemType: "email"})

			var verr *service.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Errors).To(HaveLen(3))
		})

		It("creates a second item for the same source", func() {
			mockInbound.getMessageFn = func(_ context.Context, _, _ int64) (*model.InstagramMessage, error) {
				return &model.InstagramMessage{ID: 100, UserID: 42, MessageID: "mid.1"}, nil
			}
			params := service.EnqueueParams{UserID: 42, ItemType: model.ChannelDM, SourceID: 100, Suggestion: "hi"}

			first, err := svc.Enqueue(ctx, params)
			Expect(err).NotTo(HaveOccurred())
			second, err := svc.Enqueue(ctx, params)
			Expect(err).NotTo(HaveOccurred())

			Expect(mockQueue.createCalls).To(Equal(2))
			Expect(second.ID).NotTo(Equal(first.ID))
		})
	})

	Describe("ListPending", func() {
		It("asks for at most 50 items", func() {
			mockQueue.listFn = func(_ context.Context, _ int64, limit int32) ([]model.QueueItem, error) {
				Expect(limit).To(Equal(int32(50)))
				return []model.QueueItem{{ID: 1}}, nil
			}

			items, err := svc.ListPending(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))
		})
	})

	Describe("Reject", func() {
		It("uses the default reason when none is given", func() {
			var gotReason string
			mockQueue.rejectFn = func(_ context.Context, id, _ int64, reason string) (*model.QueueItem, error) {
				gotReason = reason
				now := time.Now()
				return &model.QueueItem{ID: id, Status: model.QueueStatusRejected, RejectedAt: &now, RejectionReason: &reason}, nil
			}

			item, err := svc.Reject(ctx, 9, 42, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(gotReason).To(Equal(model.DefaultRejectionReason))
			Expect(item.Status).To(Equal(model.QueueStatusRejected))
		})

		It("passes a custom reason through", func() {
			var gotReason string
			mockQueue.rejectFn = func(_ context.Context, id, _ int64, reason string) (*model.QueueItem, error) {
				gotReason = reason
				return &model.QueueItem{ID: id}, nil
			}

			_, err := svc.Reject(ctx, 9, 42, logger.Ptr("wrong tone"))
			Expect(err).NotTo(HaveOccurred())
			Expect(gotReason).To(Equal("wrong tone"))
		})

		It("reports an already resolved item as not found", func() {
			mockQueue.rejectFn = func(_ context.Context, _, _ int64, _ string) (*model.QueueItem, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Reject(ctx, 9, 42, nil)
			Expect(err).To(MatchError(service.ErrQueueItemNotFound))
		})
	})

	Describe("Logs", func() {
		DescribeTable("clamps the limit",
			func(requested int, expected int32) {
				mockLogs.listFn = func(_ context.Context, _ int64, limit int32) ([]model.ReplyLog, error) {
					Expect(limit).To(Equal(expected))
					return nil, nil
				}
				_, err := svc.Logs(ctx, 42, requested)
				Expect(err).NotTo(HaveOccurred())
			},
			Entry("zero uses the default", 0, int32(50)),
			Entry("negative becomes one", -5, int32(1)),
			Entry("in range is kept", 20, int32(20)),
			Entry("too large is capped", 1000, int32(200)),
		)
	})
})
