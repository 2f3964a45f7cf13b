package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	stylistCount    int
	reviewCount     int
	designCount     int
	dropCollections bool
	randomSeed      int64
}

type collections struct {
	stylists string
	reviews  string
	images   string
	mappings string
	gallery  string
	settings string
}

type stylistDocument struct {
	Seq       int    `bson:"seq"`
	Name      string `bson:"name"`
	Salon     string `bson:"salon"`
	Email     string `bson:"email"`
	TargetAge string `bson:"targetAge"`
	ImageFile string `bson:"imageFile"`
}

type reviewDocument struct {
	Seq           int    `bson:"seq"`
	Age           string `bson:"age"`
	Prefecture    string `bson:"prefecture"`
	Gender        string `bson:"gender"`
	MaritalStatus string `bson:"maritalStatus"`
	HasChildren   string `bson:"hasChildren"`
	Occupation    string `bson:"occupation"`
	WomanType     string `bson:"womanType"`
	ImageFile     string `bson:"imageFile"`
	Comment       string `bson:"comment"`
}

type galleryDesignDocument struct {
	ID       string  `bson:"_id"`
	Title    string  `bson:"title"`
	Image    string  `bson:"image"`
	Category string  `bson:"category"`
	Rating   float64 `bson:"rating"`
	Views    int     `bson:"views"`
}

func main() {
	opts := parseFlags()

	cfg := collections{
		stylists: envOrDefault("STYLIST_COLLECTION", "stylists"),
		reviews:  envOrDefault("REVIEW_COLLECTION", "reviews"),
		images:   envOrDefault("IMAGE_COLLECTION", "images"),
		mappings: envOrDefault("MAPPING_COLLECTION", "column_mappings"),
		gallery:  envOrDefault("GALLERY_COLLECTION", "gallery_designs"),
		settings: envOrDefault("SETTINGS_COLLECTION", "settings"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "hair-design-review")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		if err := dropCollections(ctx, db, cfg); err != nil {
			log.Fatalf("コレクション削除に失敗しました: %v", err)
		}
		log.Printf("既存コレクションを削除しました")
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	stylistDocs := generateStylists(rng, opts.stylistCount)
	if err := insertMany(ctx, db.Collection(cfg.stylists), toAnySlice(stylistDocs)); err != nil {
		log.Fatalf("美容師データの挿入に失敗しました: %v", err)
	}

	reviewDocs := generateReviews(rng, stylistDocs, opts.reviewCount)
	if err := insertMany(ctx, db.Collection(cfg.reviews), toAnySlice(reviewDocs)); err != nil {
		log.Fatalf("アンケートデータの挿入に失敗しました: %v", err)
	}

	designDocs := generateDesigns(rng, opts.designCount)
	if err := insertMany(ctx, db.Collection(cfg.gallery), toAnySlice(designDocs)); err != nil {
		log.Fatalf("ギャラリーデータの挿入に失敗しました: %v", err)
	}

	if ownerEmail := strings.TrimSpace(os.Getenv("OWNER_EMAIL")); ownerEmail != "" {
		if err := upsertOwnerEmail(ctx, db.Collection(cfg.settings), ownerEmail); err != nil {
			log.Fatalf("オーナーメールの設定に失敗しました: %v", err)
		}
		log.Printf("オーナーメールを設定しました: %s", ownerEmail)
	}

	log.Printf("Seed 完了: stylists=%d reviews=%d designs=%d", len(stylistDocs), len(reviewDocs), len(designDocs))
	log.Printf("Mongo: %s / %s", mongoURI, dbName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.IntVar(&opts.stylistCount, "stylists", 8, "生成する美容師数")
	flag.IntVar(&opts.reviewCount, "reviews", 120, "生成するアンケート総数")
	flag.IntVar(&opts.designCount, "designs", 12, "生成するギャラリーデザイン数")
	flag.BoolVar(&opts.dropCollections, "drop", true, "既存コレクションを削除してから投入する")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "乱数シード（再現用）")
	flag.Parse()

	if opts.stylistCount <= 0 {
		log.Fatal("stylists は 1 以上を指定してください")
	}
	if opts.reviewCount < opts.stylistCount {
		opts.reviewCount = opts.stylistCount
	}
	if opts.designCount < 0 {
		opts.designCount = 0
	}
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) error {
	for _, name := range []string{
		cfg.stylists, cfg.reviews, cfg.images, cfg.mappings, cfg.gallery, cfg.settings,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			// Drop は存在しない場合も err を返すので warning ログにとどめる
			log.Printf("WARN: コレクション %s の削除に失敗: %v", name, err)
		}
	}
	return nil
}

func generateStylists(rng *rand.Rand, count int) []stylistDocument {
	docs := make([]stylistDocument, 0, count)
	for i := 0; i < count; i++ {
		name := stylistNames[i%len(stylistNames)]
		docs = append(docs, stylistDocument{
			Seq:       i,
			Name:      name,
			Salon:     salonNames[rng.Intn(len(salonNames))],
			Email:     fmt.Sprintf("stylist%d@example.com", i+1),
			TargetAge: fmt.Sprintf("%d", 24+rng.Intn(16)),
			ImageFile: fmt.Sprintf("stylist_%02d.jpg", i+1),
		})
	}
	return docs
}

func generateReviews(rng *rand.Rand, stylists []stylistDocument, total int) []reviewDocument {
	docs := make([]reviewDocument, 0, total)
	for i := 0; i < total; i++ {
		stylist := stylists[rng.Intn(len(stylists))]

		age := ""
		if rng.Intn(10) != 0 {
			age = fmt.Sprintf("%d", 20+rng.Intn(25))
		}
		occupation := occupationOptions[rng.Intn(len(occupationOptions))]
		womanType := ""
		if rng.Intn(8) != 0 {
			womanType = personaOptions[rng.Intn(len(personaOptions))]
		}

		docs = append(docs, reviewDocument{
			Seq:           i,
			Age:           age,
			Prefecture:    prefectures[rng.Intn(len(prefectures))],
			Gender:        "女性",
			MaritalStatus: maritalOptions[rng.Intn(len(maritalOptions))],
			HasChildren:   childrenOptions[rng.Intn(len(childrenOptions))],
			Occupation:    occupation,
			WomanType:     womanType,
			ImageFile:     stylist.ImageFile,
			Comment:       reviewComments[rng.Intn(len(reviewComments))],
		})
	}
	return docs
}

func generateDesigns(rng *rand.Rand, count int) []galleryDesignDocument {
	docs := make([]galleryDesignDocument, 0, count)
	for i := 0; i < count; i++ {
		docs = append(docs, galleryDesignDocument{
			ID:       fmt.Sprintf("design-%02d", i+1),
			Title:    designTitles[i%len(designTitles)],
			Image:    fmt.Sprintf("design_%02d.jpg", i+1),
			Category: designCategories[rng.Intn(len(designCategories))],
			Rating:   4.5,
			Views:    rng.Intn(500),
		})
	}
	return docs
}

func upsertOwnerEmail(ctx context.Context, col *mongo.Collection, email string) error {
	update := bson.M{"$set": bson.M{
		"ownerEmail": email,
		"updatedAt":  time.Now().UTC(),
	}}
	_, err := col.UpdateOne(ctx, bson.M{"_id": "owner"}, update, options.Update().SetUpsert(true))
	return err
}

func insertMany(ctx context.Context, col *mongo.Collection, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

func toAnySlice[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

var (
	stylistNames = []string{
		"佐藤 美咲", "鈴木 彩香", "高橋 健太", "田中 優子", "伊藤 大輔", "渡辺 真由", "山本 翔太", "中村 里奈", "小林 直樹", "加藤 千尋",
	}

	salonNames = []string{
		"HAIR STUDIO LUMIERE", "salon de mira", "Atelier Kaze", "CUT HOUSE 彩", "Loco Hair Design",
	}

	prefectures = []string{
		"東京都", "神奈川県", "千葉県", "埼玉県", "大阪府", "愛知県", "福岡県", "北海道",
	}

	occupationOptions = []string{"会社員", "自営業", "主婦", "学生", "公務員", "パート", ""}
	personaOptions    = []string{"カジュアル", "フェミニン", "エレガント", "スタイリッシュ"}
	maritalOptions    = []string{"既婚", "未婚", ""}
	childrenOptions   = []string{"あり", "なし", ""}

	designTitles = []string{
		"ナチュラルレイヤーボブ", "大人ハイライトロング", "韓国風くびれミディ", "シースルーバングショート", "ゆるふわパーマロング", "外ハネミディアム", "ハンサムショート", "透明感グレージュボブ", "エアリーウルフ", "艶感ストレートロング", "無造作マッシュ", "クラシカルアップスタイル",
	}

	designCategories = []string{"ショート", "ボブ", "ミディアム", "ロング", "アレンジ"}

	reviewComments = []string{
		"仕上がりがイメージ通りで大満足でした。",
		"カウンセリングが丁寧で安心してお任せできました。",
		"扱いやすいスタイルにしてもらえて朝が楽になりました。",
		"カラーの色味が絶妙で友人にも褒められました。",
		"また次回もお願いしたいです。",
		"",
	}
)
