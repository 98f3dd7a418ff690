package pdf

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"eticket-invoice/common/contract/mocks"
	"eticket-invoice/model"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineTestSuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	fetcher *mocks.MockImageFetcher
	qr      *mocks.MockQRGenerator
	engine  *Engine
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockImageFetcher(s.ctrl)
	s.qr = mocks.NewMockQRGenerator(s.ctrl)

	s.engine = NewEngine(viper.New(), s.fetcher, s.qr)
	s.engine.TimeNow = func() time.Time {
		return time.Date(2024, time.August, 9, 10, 16, 0, 0, time.UTC)
	}
}

func (s *EngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func tinyPNG(s *EngineTestSuite) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.Set(i, i, color.Black)
	}

	var buf bytes.Buffer
	s.Require().NoError(png.Encode(&buf, img))

	return buf.Bytes()
}

func fixtureOrder() model.Order {
	party := int64(2)
	response := "Vegetarian"

	return model.Order{
		Header: model.Header{
			Business:        "Yurplan Inc",
			Application:     "Yurplan",
			BusinessCity:    "New York, NY",
			BusinessWebsite: "https://yurplan.example",
			OrderId:         "ord_2024_0000123456789",
			OrderDate:       "2024-08-09T10:16:00Z",
			CustomerEmail:   "very.long.customer.email@example.com",
			Seller:          "Box Office",
			End:             "2024-08-10T22:00:00Z",
			UsageBox: model.UsageBox{
				Title:   "How to use your ticket",
				Details: "Present the QR code at the entrance. Screenshots are accepted.",
			},
		},
		Event: &model.Event{
			Id:     "evt_1",
			Name:   "Summer Fest",
			Images: []string{"https://cdn.example/event.png"},
			Location: model.Location{
				Name: "Main Hall",
				Address: model.Address{
					City:       "New York",
					LineOne:    "1 Festival Way",
					PostalCode: "10001",
					State:      "NY",
				},
			},
			Tickets: []model.Ticket{
				{
					Id:        "tkt_1",
					Name:      "General Admission",
					Details:   "Standing area",
					Price:     3000,
					Quantity:  2,
					SaleStart: 1723190400,
					Party:     &party,
					Options: []model.TicketOption{
						{Title: "Meal preference", Response: &response},
						{Title: "Parking"},
					},
				},
				{
					Id:   "tkt_2",
					Name: "VIP",
				},
			},
		},
		Items: []model.Item{
			{
				Id:       "itm_1",
				Name:     "Event T-Shirt",
				Price:    2500,
				Quantity: 1,
				Type:     "merchandise",
				Image:    "https://cdn.example/shirt.png",
				Responses: []model.ItemResponse{
					{Title: "Size", Response: "L"},
				},
			},
			{
				Id:   "itm_2",
				Name: "Poster",
			},
		},
		Subtotal: 8500,
		Tax:      500,
		Total:    9000,
	}
}

func (s *EngineTestSuite) TestRenderFullOrder() {
	// one fetch for the summary event image plus one representative image per
	// record page
	s.fetcher.EXPECT().Fetch(gomock.Any(), "https://cdn.example/event.png").Return("", errors.New("unreachable")).Times(1)
	s.fetcher.EXPECT().Fetch(gomock.Any(), "https://cdn.example/shirt.png").Return("", errors.New("unreachable")).Times(2)
	s.qr.EXPECT().Generate(gomock.Any(), 256).Return(tinyPNG(s), nil).Times(2)

	var buf bytes.Buffer
	err := s.engine.Render(context.Background(), fixtureOrder(), &buf)

	s.Require().NoError(err)
	s.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	s.Greater(buf.Len(), 1000)
}

func (s *EngineTestSuite) TestRenderProductOnly() {
	order := fixtureOrder()
	order.Product = &model.Product{
		Name:    order.Event.Name,
		Tickets: order.Event.Tickets,
	}
	order.Event = nil
	order.Items = nil

	s.qr.EXPECT().Generate(gomock.Any(), 256).Return(tinyPNG(s), nil).Times(2)

	var buf bytes.Buffer
	err := s.engine.Render(context.Background(), order, &buf)

	s.Require().NoError(err)
	s.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func (s *EngineTestSuite) TestRenderItemsOnlyOrder() {
	order := fixtureOrder()
	order.Event = nil

	s.fetcher.EXPECT().Fetch(gomock.Any(), "https://cdn.example/shirt.png").Return("", errors.New("unreachable")).AnyTimes()
	s.qr.EXPECT().Generate(gomock.Any(), 256).Return(tinyPNG(s), nil).Times(2)

	var buf bytes.Buffer
	err := s.engine.Render(context.Background(), order, &buf)

	s.Require().NoError(err)
	s.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func (s *EngineTestSuite) TestRenderEmptyOrder() {
	order := model.Order{Header: fixtureOrder().Header}

	var buf bytes.Buffer
	err := s.engine.Render(context.Background(), order, &buf)

	s.Require().NoError(err)
	s.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func (s *EngineTestSuite) TestRenderFreeTicketOrder() {
	order := fixtureOrder()
	order.Event.Tickets = order.Event.Tickets[1:2] // VIP carries no price
	order.Event.Images = nil
	order.Items = []model.Item{{Id: "itm_3", Name: "Bundle", Price: 4500, Quantity: 3}}

	s.qr.EXPECT().Generate(gomock.Any(), 256).Return(tinyPNG(s), nil).Times(1)

	var buf bytes.Buffer
	err := s.engine.Render(context.Background(), order, &buf)

	s.Require().NoError(err)
	// summary page plus one record page
	s.True(bytes.Contains(buf.Bytes(), []byte("/Count 2")))
}

func (s *EngineTestSuite) TestRenderQRFailureDoesNotFailDocument() {
	order := fixtureOrder()
	order.Event = nil
	order.Items = order.Items[:1]

	s.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("", errors.New("unreachable")).AnyTimes()
	s.qr.EXPECT().Generate(gomock.Any(), 256).Return(nil, errors.New("qr backend down"))

	var buf bytes.Buffer
	err := s.engine.Render(context.Background(), order, &buf)

	s.Require().NoError(err)
	s.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func (s *EngineTestSuite) TestRenderCancelledContext() {
	s.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("", errors.New("unreachable")).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := s.engine.Render(ctx, fixtureOrder(), &buf)

	s.Require().ErrorIs(err, context.Canceled)
}

func (s *EngineTestSuite) TestRenderUnparseableOrderDateFallsBack() {
	order := fixtureOrder()
	order.Event = nil
	order.Items = order.Items[:1]
	order.Header.OrderDate = "not-a-date"

	s.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("", errors.New("unreachable")).AnyTimes()
	s.qr.EXPECT().Generate(gomock.Any(), 256).Return(tinyPNG(s), nil)

	var buf bytes.Buffer
	err := s.engine.Render(context.Background(), order, &buf)

	s.Require().NoError(err)
	s.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
