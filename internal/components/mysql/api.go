package mysql

import (
	"fmt"

	"github.com/reusedev/tutor-voice/config"
	"github.com/reusedev/tutor-voice/internal/modules/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitMySQL(config config.MySQL) {
	db, err := gorm.Open(mysql.Open(DSN(config)), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	err = db.AutoMigrate(&model.InvokeHistory{})
	if err != nil {
		panic(err)
	}
	DB = db
}

func DSN(config config.MySQL) string {
	charset := config.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local", config.Username, config.Password, config.Host, config.Port, config.Database, charset)
}
