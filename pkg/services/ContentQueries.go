package services

import "github.com/raminaphoto/website/pkg/models"

/*
contentQueries holds the only GROQ queries this site ever sends. Callers
pick a collection; they never build queries themselves.
*/
var contentQueries = map[models.Collection]string{
	models.CollectionSettings: `*[_type == "siteSettings"][0]{` +
		`photographerName,aboutText,"photographerPhotoUrl": photographerPhoto.asset->url,locationsText,` +
		`contacts{phone,email,instagram,telegram,whatsapp}` +
		`}`,

	models.CollectionPortfolio: `*[_type == "portfolioItem"]|order(order asc){` +
		`title,"coverUrl": coverImage.asset->url,"galleryUrls": gallery[].asset->url,videoUrl,order` +
		`}`,

	models.CollectionPrices: `*[_type == "pricePackage"]|order(order asc){` +
		`title,price,features,order` +
		`}`,

	models.CollectionCertificates: `*[_type == "certificate"]|order(_createdAt desc)[0..2]{` +
		`title,year,"imageUrl": image.asset->url` +
		`}`,
}

// QueryFor returns the GROQ query for a collection.
func QueryFor(collection models.Collection) (string, bool) {
	q, ok := contentQueries[collection]
	return q, ok
}
