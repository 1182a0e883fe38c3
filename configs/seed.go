package configs

import (
	"log"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"golang.org/x/crypto/bcrypt"
)

// 初回起動時に管理者を作成する
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Admin{
		Email:    email,
		Password: string(hash),
	}
	return db.Create(&admin).Error
}
