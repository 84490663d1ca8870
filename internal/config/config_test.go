package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/contacts/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.Store, convey.ShouldEqual, config.StoreMemory)
			convey.So(cfg.MongoDatabase, convey.ShouldEqual, "contacts")
			convey.So(cfg.GenerateIDs, convey.ShouldBeTrue)
			convey.So(cfg.Sanitize, convey.ShouldBeTrue)
			convey.So(cfg.MongoTimeout(), convey.ShouldEqual, 5*time.Second)
			convey.So(cfg.ShutdownTimeout(), convey.ShouldEqual, 30*time.Second)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		convey.Convey("When the store is unknown", func() {
			cfg.Store = "redis"
			err := cfg.Validate()

			convey.Convey("Then it should be rejected as invalid", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "unknown store")
			})
		})

		convey.Convey("When the store is mongo without a uri", func() {
			cfg.Store = config.StoreMongo
			cfg.MongoURI = " "
			err := cfg.Validate()

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "mongo_uri")
			})
		})

		convey.Convey("When the store is mongo without a collection", func() {
			cfg.Store = config.StoreMongo
			cfg.MongoCollection = ""

			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the log format is unknown", func() {
			cfg.LogFormat = "xml"

			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the log format is upper case", func() {
			cfg.LogFormat = "JSON"

			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When the shutdown timeout is not positive", func() {
			cfg.ShutdownTimeoutMS = 0

			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
