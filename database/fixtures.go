package database

import "github.com/portfolio-api/models"

const sampleImage = "https://fujifilm-x.com/wp-content/uploads/2019/08/x-t30_sample-images03.jpg"

// FixtureProjects returns the development and test data set. Every call
// returns fresh slices.
func FixtureProjects() []models.Project {
	return []models.Project{
		{
			ID:           "proclaim-your-game-website",
			Title:        "Proclaim Your Game Website",
			Overview:     "xyz",
			Description:  "ABC",
			CreationDate: "November 2021",
			Type:         "Solo",
			TechTags: []string{
				"Javascript", "PSQL", "Node.js", "Express", "Axios",
				"React", "Jest", "HTML", "CSS",
			},
			BackendGithubLink:  "https://github.com/catcodingcat/proclaim-your-game-be",
			FrontendGithubLink: "https://github.com/catcodingcat/proclaim-your-game-fe",
			BackendHostedLink:  "https://dashboard.heroku.com/apps/proclaim-your-game",
			FrontendHostedLink: "https://proclaim-your-game.netlify.app/",
			MainImage:          sampleImage,
			Screenshots:        []string{sampleImage, sampleImage, sampleImage},
		},
		{
			ID:           "make-space-app",
			Title:        "Make Space App",
			Overview:     "xyz",
			Description:  "ABC",
			CreationDate: "December 2021",
			Type:         "Group",
			TechTags: []string{
				"Javascript", "MongoDB", "Mongoose", "Node.js", "Express",
				"Axios", "React Native", "Expo", "Firebase", "Mocha",
				"Chai", "HTML", "CSS",
			},
			BackendGithubLink:  "https://github.com/Kpovey115/makespace-BE",
			FrontendGithubLink: "https://github.com/Kpovey115/makespace-FE",
			BackendHostedLink:  "///",
			FrontendHostedLink: "https://expo.dev/@popatre/MakeSpace",
			MainImage:          sampleImage,
			Screenshots:        []string{sampleImage, sampleImage, sampleImage},
		},
		{
			ID:                 "bookshelf-pair-kata",
			Title:              "Bookshelf Pair Kata",
			Overview:           "xyz",
			Description:        "ABC",
			CreationDate:       "October 2021",
			Type:               "Pair",
			TechTags:           []string{"Javascript", "Jest", "Jest"},
			BackendGithubLink:  "",
			FrontendGithubLink: "",
			BackendHostedLink:  "",
			FrontendHostedLink: "",
			MainImage:          sampleImage,
			Screenshots:        []string{},
		},
	}
}
