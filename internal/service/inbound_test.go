package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/queue"
	"replydesk.app/server/internal/service"
)

var _ = Describe("InboundService", func() {
	var (
		svc          service.InboundService
		mockInbound  *mockInboundStore
		producer     *mockProducer
		ctx          context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockInbound = &mockInboundStore{}
		producer = &mockProducer{}
		svc = service.NewInboundService(mockInbound, producer)
	})

	Describe("IngestMessage", func() {
		in := service.InboundMessage{
			UserID:         42,
			MessageID:      "mid.1",
			ConversationID: "conv.1",
			SenderID:       "s1",
			Text:           "hello",
			ReceivedAt:     time.Unix(1700000000, 0),
		}

		It("stores the message and publishes a task", func() {
			msg, err := svc.IngestMessage(ctx, in, logger.Ptr("trace-1"))

			Expect(err).NotTo(HaveOccurred())
			Expect(msg.ID).NotTo(BeZero())
			Expect(producer.tasks).To(HaveLen(1))
			task := producer.tasks[0]
			Expect(task.UserID).To(Equal(int64(42)))
			Expect(task.Channel).To(Equal("dm"))
			Expect(task.SourceID).To(Equal(msg.ID))
			Expect(task.PlatformID).To(Equal("mid.1"))
			Expect(task.TraceID).To(HaveValue(Equal("trace-1")))
		})

		It("republishes a redelivered message under the stored id", func() {
			mockInbound.saveMessageFn = func(_ context.Context, msg *model.InstagramMessage) (bool, error) {
				msg.ID = 5
				return false, nil
			}

			msg, err := svc.IngestMessage(ctx, in, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(msg.ID).To(Equal(int64(5)))
			Expect(producer.tasks).To(HaveLen(1))
			Expect(producer.tasks[0].SourceID).To(Equal(int64(5)))
		})

		It("publishes on redelivery after a failed publish", func() {
			var storedID int64
			mockInbound.saveMessageFn = func(_ context.Context, msg *model.InstagramMessage) (bool, error) {
				if storedID == 0 {
					storedID = msg.ID
					return true, nil
				}
				msg.ID = storedID
				return false, nil
			}
			calls := 0
			producer.enqueueFn = func(_ context.Context, _ queue.InboundTask) error {
				calls++
				if calls == 1 {
					return errors.New("redis unavailable")
				}
				return nil
			}

			_, err := svc.IngestMessage(ctx, in, nil)
			Expect(err).To(HaveOccurred())
			Expect(producer.tasks).To(BeEmpty())

			msg, err := svc.IngestMessage(ctx, in, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(producer.tasks).To(HaveLen(1))
			Expect(producer.tasks[0].SourceID).To(Equal(storedID))
			Expect(msg.ID).To(Equal(storedID))
		})

		It("fails when the task cannot be published", func() {
			producer.enqueueFn = func(_ context.Context, _ queue.InboundTask) error {
				return errors.New("redis unavailable")
			}

			_, err := svc.IngestMessage(ctx, in, nil)
			Expect(err).To(MatchError(ContainSubstring("publishing inbound task")))
		})
	})

	Describe("IngestComment", func() {
		It("publishes a comment task", func() {
			comment, err := svc.IngestComment(ctx, service.InboundComment{
				UserID: 42, CommentID: "c.1", MediaID: "m.1", SenderID: "s1", Text: "price?",
			}, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(producer.tasks).To(HaveLen(1))
			Expect(producer.tasks[0].Channel).To(Equal("comment"))
			Expect(producer.tasks[0].SourceID).To(Equal(comment.ID))
		})

		It("publishes a redelivered comment after a failed publish", func() {
			in := service.InboundComment{UserID: 42, CommentID: "c.2", MediaID: "m.1", SenderID: "s1", Text: "size?"}
			seen := false
			mockInbound.saveCommentFn = func(_ context.Context, c *model.InstagramComment) (bool, error) {
				if seen {
					c.ID = 77
					return false, nil
				}
				seen = true
				c.ID = 77
				return true, nil
			}
			failed := false
			producer.enqueueFn = func(_ context.Context, _ queue.InboundTask) error {
				if !failed {
					failed = true
					return errors.New("redis unavailable")
				}
				return nil
			}

			_, err := svc.IngestComment(ctx, in, nil)
			Expect(err).To(HaveOccurred())

			_, err = svc.IngestComment(ctx, in, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(producer.tasks).To(HaveLen(1))
			Expect(producer.tasks[0].SourceID).To(Equal(int64(77)))
		})

		It("propagates store errors", func() {
			mockInbound.saveCommentFn = func(_ context.Context, _ *model.InstagramComment) (bool, error) {
				return false, errors.New("db down")
			}

			_, err := svc.IngestComment(ctx, service.InboundComment{UserID: 42, CommentID: "c.1"}, nil)
			Expect(err).To(HaveOccurred())
			Expect(producer.tasks).To(BeEmpty())
		})
	})
})
