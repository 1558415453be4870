package database

import (
	"time"

	"github.com/emilythestrangee/nc-news/backend/internal/models"
)

const defaultArticleImg = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// DevData returns the development dataset: 3 topics, 4 users, 13 articles and
// 18 comments. The integration suites assert against these exact rows.
func DevData() SeedData {
	return SeedData{
		Topics: []models.Topic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []models.User{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []SeedArticle{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: ts("2020-07-09T20:11:00Z"), Votes: 100, ArticleImgURL: defaultArticleImg},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago — never mind how long precisely — I bought a laptop.", CreatedAt: ts("2020-10-16T05:03:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: ts("2020-11-03T09:12:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY burst another students eardrums, and they are now suing for damages", CreatedAt: ts("2020-05-06T01:14:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: ts("2020-08-03T13:14:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: ts("2020-10-18T01:00:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: ts("2020-01-07T14:08:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch. Surely I am not the only person who can see this?!", CreatedAt: ts("2020-04-17T01:08:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: ts("2020-06-06T09:10:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: ts("2020-05-14T04:15:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall blankly, like a cat. Does this make me a cat?", CreatedAt: ts("2020-01-15T22:21:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: ts("2020-10-11T11:24:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: ts("2020-10-11T11:24:00Z"), Votes: 0, ArticleImgURL: defaultArticleImg},
		},
		Comments: []SeedComment{
			{Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", ArticleID: 9, Author: "butter_bridge", Votes: 16, CreatedAt: ts("2020-04-06T12:17:00Z")},
			{Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sharks are roaming these waters.", ArticleID: 1, Author: "butter_bridge", Votes: 14, CreatedAt: ts("2020-10-31T03:03:00Z")},
			{Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide, but, uh, call me crazy — onyou it works.", ArticleID: 1, Author: "icellusedkars", Votes: 100, CreatedAt: ts("2020-03-01T01:13:00Z")},
			{Body: "I carry a log — yes. Is it funny to you? It is not to me.", ArticleID: 1, Author: "icellusedkars", Votes: -100, CreatedAt: ts("2020-02-23T12:01:00Z")},
			{Body: "I hate streaming noses", ArticleID: 1, Author: "icellusedkars", Votes: 0, CreatedAt: ts("2020-11-03T21:00:00Z")},
			{Body: "I hate streaming eyes even more", ArticleID: 1, Author: "icellusedkars", Votes: 0, CreatedAt: ts("2020-04-11T21:02:00Z")},
			{Body: "Lobster pot", ArticleID: 1, Author: "icellusedkars", Votes: 0, CreatedAt: ts("2020-05-15T20:19:00Z")},
			{Body: "Delicious crackerbreads", ArticleID: 1, Author: "icellusedkars", Votes: 0, CreatedAt: ts("2020-04-14T20:19:00Z")},
			{Body: "Superficially charming", ArticleID: 1, Author: "icellusedkars", Votes: 0, CreatedAt: ts("2020-01-01T03:08:00Z")},
			{Body: "git push origin master", ArticleID: 3, Author: "icellusedkars", Votes: 0, CreatedAt: ts("2020-06-20T07:24:00Z")},
			{Body: "Ambidextrous marsupial", ArticleID: 3, Author: "icellusedkars", Votes: 0, CreatedAt: ts("2020-09-19T23:10:00Z")},
			{Body: "Massive intercranial brain haemorrhage", ArticleID: 1, Author: "icellusedkars", Votes: 0, CreatedAt: ts("2020-03-02T07:10:00Z")},
			{Body: "Fruit pastilles", ArticleID: 1, Author: "icellusedkars", Votes: 0, CreatedAt: ts("2020-06-15T10:25:00Z")},
			{Body: "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", ArticleID: 5, Author: "icellusedkars", Votes: 16, CreatedAt: ts("2020-06-09T05:00:00Z")},
			{Body: "I am 100% sure that we're not completely sure.", ArticleID: 5, Author: "butter_bridge", Votes: 1, CreatedAt: ts("2020-11-24T00:08:00Z")},
			{Body: "This morning, I showered for nine minutes.", ArticleID: 1, Author: "butter_bridge", Votes: 1, CreatedAt: ts("2020-10-11T15:23:00Z")},
			{Body: "The owls are not what they seem.", ArticleID: 9, Author: "icellusedkars", Votes: 20, CreatedAt: ts("2020-03-14T17:02:00Z")},
			{Body: "This is a bad article name", ArticleID: 1, Author: "butter_bridge", Votes: 1, CreatedAt: ts("2020-10-11T15:23:00Z")},
		},
	}
}
