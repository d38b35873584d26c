package database

import (
	"gorm.io/gorm"
)

type Database struct {
	blogPostRepo     *BlogPostRepo
	tagRepo          *TagRepo
	commentRepo      *CommentRepo
	projectRepo      *ProjectRepo
	galleryImageRepo *GalleryImageRepo
	userRepo         *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo:     NewBlogPostRepo(db),
		tagRepo:          NewTagRepo(db),
		commentRepo:      NewCommentRepo(db),
		projectRepo:      NewProjectRepo(db),
		galleryImageRepo: NewGalleryImageRepo(db),
		userRepo:         NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) GalleryImageRepo() *GalleryImageRepo {
	return d.galleryImageRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
