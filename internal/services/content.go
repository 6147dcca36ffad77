package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/events"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/repos"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

// ContentService is the single write/read path for every content list. Each
// mutation runs in its own transaction and publishes a content event after
// the commit; queries run outside transactions.
type ContentService interface {
  Home(ctx context.Context) (types.HomeData, error)

  ListTitles(ctx context.Context) ([]types.Title, error)
  CreateTitle(ctx context.Context, data *types.Title) (*types.Title, error)
  UpdateTitle(ctx context.Context, id uuid.UUID, data *types.Title) (*types.Title, error)
  DeleteTitle(ctx context.Context, id uuid.UUID) error

  ListContacts(ctx context.Context) ([]types.Contact, error)
  CreateContact(ctx context.Context, data *types.Contact) (*types.Contact, error)
  UpdateContact(ctx context.Context, id uuid.UUID, data *types.Contact) (*types.Contact, error)
  DeleteContact(ctx context.Context, id uuid.UUID) error

  ListAbouts(ctx context.Context) ([]types.About, error)
  CreateAbout(ctx context.Context, data *types.About) (*types.About, error)
  UpdateAbout(ctx context.Context, id uuid.UUID, data *types.About) (*types.About, error)
  DeleteAbout(ctx context.Context, id uuid.UUID) error

  ListStatistics(ctx context.Context) ([]types.Statistic, error)
  CreateStatistic(ctx context.Context, data *types.Statistic) (*types.Statistic, error)
  UpdateStatistic(ctx context.Context, id uuid.UUID, data *types.Statistic) (*types.Statistic, error)
  DeleteStatistic(ctx context.Context, id uuid.UUID) error

  ListPossibilities(ctx context.Context) ([]types.Possibilitie, error)
  CreatePossibilitie(ctx context.Context, data *types.Possibilitie) (*types.Possibilitie, error)
  UpdatePossibilitie(ctx context.Context, id uuid.UUID, data *types.Possibilitie) (*types.Possibilitie, error)
  DeletePossibilitie(ctx context.Context, id uuid.UUID) error

  ListStages(ctx context.Context) ([]types.Stage, error)
  CreateStage(ctx context.Context, data *types.Stage) (*types.Stage, error)
  UpdateStage(ctx context.Context, id uuid.UUID, data *types.Stage) (*types.Stage, error)
  DeleteStage(ctx context.Context, id uuid.UUID) error

  ListCases(ctx context.Context) ([]types.Case, error)
  CreateCase(ctx context.Context, data *types.Case) (*types.Case, error)
  UpdateCase(ctx context.Context, id uuid.UUID, data *types.Case) (*types.Case, error)
  DeleteCase(ctx context.Context, id uuid.UUID) error

  ListFaqs(ctx context.Context) ([]types.Faq, error)
  CreateFaq(ctx context.Context, data *types.Faq) (*types.Faq, error)
  UpdateFaq(ctx context.Context, id uuid.UUID, data *types.Faq) (*types.Faq, error)
  DeleteFaq(ctx context.Context, id uuid.UUID) error

  ListDocuments(ctx context.Context) ([]types.Document, error)
  GetDocumentBySlug(ctx context.Context, slug string) (*types.Document, error)
  CreateDocument(ctx context.Context, data *types.Document) (*types.Document, error)
  UpdateDocument(ctx context.Context, id uuid.UUID, data *types.Document) (*types.Document, error)
  DeleteDocument(ctx context.Context, id uuid.UUID) error

  ListClients(ctx context.Context) ([]types.Client, error)
  CreateClient(ctx context.Context, data *types.Client) (*types.Client, error)
  UpdateClient(ctx context.Context, id uuid.UUID, data *types.Client) (*types.Client, error)
  DeleteClient(ctx context.Context, id uuid.UUID) error

  ListUsers(ctx context.Context) ([]types.User, error)
  CreateUser(ctx context.Context, data *types.User) (*types.User, error)
  UpdateUser(ctx context.Context, id uuid.UUID, data *types.User) (*types.User, error)
  DeleteUser(ctx context.Context, id uuid.UUID) error
}

type contentService struct {
  db               *gorm.DB
  log              *logger.Logger
  titleRepo        repos.TitleRepo
  contactRepo      repos.ContactRepo
  aboutRepo        repos.AboutRepo
  statisticRepo    repos.StatisticRepo
  possibilitieRepo repos.PossibilitieRepo
  stageRepo        repos.StageRepo
  caseRepo         repos.CaseRepo
  faqRepo          repos.FaqRepo
  documentRepo     repos.DocumentRepo
  clientRepo       repos.ClientRepo
  userRepo         repos.UserRepo
  publisher        events.Publisher
}

func NewContentService(
  db *gorm.DB,
  log *logger.Logger,
  titleRepo repos.TitleRepo,
  contactRepo repos.ContactRepo,
  aboutRepo repos.AboutRepo,
  statisticRepo repos.StatisticRepo,
  possibilitieRepo repos.PossibilitieRepo,
  stageRepo repos.StageRepo,
  caseRepo repos.CaseRepo,
  faqRepo repos.FaqRepo,
  documentRepo repos.DocumentRepo,
  clientRepo repos.ClientRepo,
  userRepo repos.UserRepo,
  publisher events.Publisher,
) ContentService {
  serviceLog := log.With("service", "ContentService")
  return &contentService{
    db:               db,
    log:              serviceLog,
    titleRepo:        titleRepo,
    contactRepo:      contactRepo,
    aboutRepo:        aboutRepo,
    statisticRepo:    statisticRepo,
    possibilitieRepo: possibilitieRepo,
    stageRepo:        stageRepo,
    caseRepo:         caseRepo,
    faqRepo:          faqRepo,
    documentRepo:     documentRepo,
    clientRepo:       clientRepo,
    userRepo:         userRepo,
    publisher:        publisher,
  }
}

// afterWrite publishes the content event once the mutation has committed.
// Entities without cached views are filtered by the dispatcher.
func (cs *contentService) afterWrite(entity string, op events.Op) {
  if cs.publisher != nil {
    cs.publisher.Publish(events.ContentEvent{Entity: entity, Op: op})
  }
}

func (cs *contentService) Home(ctx context.Context) (types.HomeData, error) {
  home := types.EmptyHomeData()
  var err error
  if home.Titles, err = cs.titleRepo.List(ctx, nil); err != nil {
    return home, fmt.Errorf("Failed to list titles: %w", err)
  }
  if home.Contacts, err = cs.contactRepo.List(ctx, nil); err != nil {
    return home, fmt.Errorf("Failed to list contacts: %w", err)
  }
  if home.Abouts, err = cs.aboutRepo.List(ctx, nil); err != nil {
    return home, fmt.Errorf("Failed to list abouts: %w", err)
  }
  if home.Statistics, err = cs.statisticRepo.List(ctx, nil); err != nil {
    return home, fmt.Errorf("Failed to list statistics: %w", err)
  }
  if home.Possibilities, err = cs.possibilitieRepo.List(ctx, nil); err != nil {
    return home, fmt.Errorf("Failed to list possibilities: %w", err)
  }
  if home.Stages, err = cs.stageRepo.List(ctx, nil); err != nil {
    return home, fmt.Errorf("Failed to list stages: %w", err)
  }
  if home.Cases, err = cs.caseRepo.List(ctx, nil); err != nil {
    return home, fmt.Errorf("Failed to list cases: %w", err)
  }
  if home.Faqs, err = cs.faqRepo.List(ctx, nil); err != nil {
    return home, fmt.Errorf("Failed to list faqs: %w", err)
  }
  return home, nil
}

// ---- Title ----

func (cs *contentService) ListTitles(ctx context.Context) ([]types.Title, error) {
  return cs.titleRepo.List(ctx, nil)
}

func (cs *contentService) CreateTitle(ctx context.Context, data *types.Title) (*types.Title, error) {
  if data.Name == "" || data.Title == "" {
    return nil, fmt.Errorf("Title requires name and title")
  }
  var out *types.Title
  if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    created, err := cs.titleRepo.Create(ctx, tx, data)
    if err != nil {
      return err
    }
    out = created
    return nil
  }); err != nil {
    return nil, err
  }
  cs.afterWrite("title", events.OpCreate)
  return out, nil
}

func (cs *contentService) UpdateTitle(ctx context.Context, id uuid.UUID, data *types.Title) (*types.Title, error) {
  var out *types.Title
  if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    updated, err := cs.titleRepo.Update(ctx, tx, id, data)
    if err != nil {
      return err
    }
    out = updated
    return nil
  }); err != nil {
    return nil, err
  }
  cs.afterWrite("title", events.OpUpdate)
  return out, nil
}

func (cs *contentService) DeleteTitle(ctx context.Context, id uuid.UUID) error {
  if err := cs.titleRepo.Delete(ctx, nil, id); err != nil {
    return err
  }
  cs.afterWrite("title", events.OpDelete)
  return nil
}

// ---- Contact ----

func (cs *contentService) ListContacts(ctx context.Context) ([]types.Contact, error) {
  return cs.contactRepo.List(ctx, nil)
}

func (cs *contentService) CreateContact(ctx context.Context, data *types.Contact) (*types.Contact, error) {
  if data.Name == "" || data.Value == "" {
    return nil, fmt.Errorf("Contact requires name and value")
  }
  created, err := cs.contactRepo.Create(ctx, nil, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("contact", events.OpCreate)
  return created, nil
}

func (cs *contentService) UpdateContact(ctx context.Context, id uuid.UUID, data *types.Contact) (*types.Contact, error) {
  updated, err := cs.contactRepo.Update(ctx, nil, id, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("contact", events.OpUpdate)
  return updated, nil
}

func (cs *contentService) DeleteContact(ctx context.Context, id uuid.UUID) error {
  if err := cs.contactRepo.Delete(ctx, nil, id); err != nil {
    return err
  }
  cs.afterWrite("contact", events.OpDelete)
  return nil
}

// ---- About ----

func (cs *contentService) ListAbouts(ctx context.Context) ([]types.About, error) {
  return cs.aboutRepo.List(ctx, nil)
}

func (cs *contentService) CreateAbout(ctx context.Context, data *types.About) (*types.About, error) {
  if data.Title == "" || data.Text == "" {
    return nil, fmt.Errorf("About requires title and text")
  }
  created, err := cs.aboutRepo.Create(ctx, nil, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("about", events.OpCreate)
  return created, nil
}

func (cs *contentService) UpdateAbout(ctx context.Context, id uuid.UUID, data *types.About) (*types.About, error) {
  updated, err := cs.aboutRepo.Update(ctx, nil, id, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("about", events.OpUpdate)
  return updated, nil
}

func (cs *contentService) DeleteAbout(ctx context.Context, id uuid.UUID) error {
  if err := cs.aboutRepo.Delete(ctx, nil, id); err != nil {
    return err
  }
  cs.afterWrite("about", events.OpDelete)
  return nil
}

// ---- Statistic ----

func (cs *contentService) ListStatistics(ctx context.Context) ([]types.Statistic, error) {
  return cs.statisticRepo.List(ctx, nil)
}

func (cs *contentService) CreateStatistic(ctx context.Context, data *types.Statistic) (*types.Statistic, error) {
  if data.Title == "" || data.Text == "" {
    return nil, fmt.Errorf("Statistic requires title and text")
  }
  created, err := cs.statisticRepo.Create(ctx, nil, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("statistic", events.OpCreate)
  return created, nil
}

func (cs *contentService) UpdateStatistic(ctx context.Context, id uuid.UUID, data *types.Statistic) (*types.Statistic, error) {
  updated, err := cs.statisticRepo.Update(ctx, nil, id, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("statistic", events.OpUpdate)
  return updated, nil
}

func (cs *contentService) DeleteStatistic(ctx context.Context, id uuid.UUID) error {
  if err := cs.statisticRepo.Delete(ctx, nil, id); err != nil {
    return err
  }
  cs.afterWrite("statistic", events.OpDelete)
  return nil
}

// ---- Possibilitie ----

func (cs *contentService) ListPossibilities(ctx context.Context) ([]types.Possibilitie, error) {
  return cs.possibilitieRepo.List(ctx, nil)
}

func (cs *contentService) CreatePossibilitie(ctx context.Context, data *types.Possibilitie) (*types.Possibilitie, error) {
  if data.Title == "" || data.Text == "" {
    return nil, fmt.Errorf("Possibilitie requires title and text")
  }
  var out *types.Possibilitie
  if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    created, err := cs.possibilitieRepo.Create(ctx, tx, data)
    if err != nil {
      return err
    }
    out = created
    return nil
  }); err != nil {
    return nil, err
  }
  cs.afterWrite("possibilitie", events.OpCreate)
  return out, nil
}

func (cs *contentService) UpdatePossibilitie(ctx context.Context, id uuid.UUID, data *types.Possibilitie) (*types.Possibilitie, error) {
  var out *types.Possibilitie
  if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    updated, err := cs.possibilitieRepo.Update(ctx, tx, id, data)
    if err != nil {
      return err
    }
    out = updated
    return nil
  }); err != nil {
    return nil, err
  }
  cs.afterWrite("possibilitie", events.OpUpdate)
  return out, nil
}

func (cs *contentService) DeletePossibilitie(ctx context.Context, id uuid.UUID) error {
  if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return cs.possibilitieRepo.Delete(ctx, tx, id)
  }); err != nil {
    return err
  }
  cs.afterWrite("possibilitie", events.OpDelete)
  return nil
}

// ---- Stage ----

func (cs *contentService) ListStages(ctx context.Context) ([]types.Stage, error) {
  return cs.stageRepo.List(ctx, nil)
}

func (cs *contentService) CreateStage(ctx context.Context, data *types.Stage) (*types.Stage, error) {
  if data.Title == "" || data.Text == "" {
    return nil, fmt.Errorf("Stage requires title and text")
  }
  var out *types.Stage
  if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    created, err := cs.stageRepo.Create(ctx, tx, data)
    if err != nil {
      return err
    }
    out = created
    return nil
  }); err != nil {
    return nil, err
  }
  cs.afterWrite("stage", events.OpCreate)
  return out, nil
}

func (cs *contentService) UpdateStage(ctx context.Context, id uuid.UUID, data *types.Stage) (*types.Stage, error) {
  var out *types.Stage
  if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    updated, err := cs.stageRepo.Update(ctx, tx, id, data)
    if err != nil {
      return err
    }
    out = updated
    return nil
  }); err != nil {
    return nil, err
  }
  cs.afterWrite("stage", events.OpUpdate)
  return out, nil
}

func (cs *contentService) DeleteStage(ctx context.Context, id uuid.UUID) error {
  if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return cs.stageRepo.Delete(ctx, tx, id)
  }); err != nil {
    return err
  }
  cs.afterWrite("stage", events.OpDelete)
  return nil
}

// ---- Case ----

func (cs *contentService) ListCases(ctx context.Context) ([]types.Case, error) {
  return cs.caseRepo.List(ctx, nil)
}

func (cs *contentService) CreateCase(ctx context.Context, data *types.Case) (*types.Case, error) {
  if data.Direction == "" || data.Title == "" || data.Text == "" {
    return nil, fmt.Errorf("Case requires direction, title and text")
  }
  created, err := cs.caseRepo.Create(ctx, nil, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("case", events.OpCreate)
  return created, nil
}

func (cs *contentService) UpdateCase(ctx context.Context, id uuid.UUID, data *types.Case) (*types.Case, error) {
  updated, err := cs.caseRepo.Update(ctx, nil, id, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("case", events.OpUpdate)
  return updated, nil
}

func (cs *contentService) DeleteCase(ctx context.Context, id uuid.UUID) error {
  if err := cs.caseRepo.Delete(ctx, nil, id); err != nil {
    return err
  }
  cs.afterWrite("case", events.OpDelete)
  return nil
}

// ---- Faq ----

func (cs *contentService) ListFaqs(ctx context.Context) ([]types.Faq, error) {
  return cs.faqRepo.List(ctx, nil)
}

func (cs *contentService) CreateFaq(ctx context.Context, data *types.Faq) (*types.Faq, error) {
  if data.Question == "" || data.Answer == "" {
    return nil, fmt.Errorf("Faq requires question and answer")
  }
  created, err := cs.faqRepo.Create(ctx, nil, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("faq", events.OpCreate)
  return created, nil
}

func (cs *contentService) UpdateFaq(ctx context.Context, id uuid.UUID, data *types.Faq) (*types.Faq, error) {
  updated, err := cs.faqRepo.Update(ctx, nil, id, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("faq", events.OpUpdate)
  return updated, nil
}

func (cs *contentService) DeleteFaq(ctx context.Context, id uuid.UUID) error {
  if err := cs.faqRepo.Delete(ctx, nil, id); err != nil {
    return err
  }
  cs.afterWrite("faq", events.OpDelete)
  return nil
}

// ---- Document ----

func (cs *contentService) ListDocuments(ctx context.Context) ([]types.Document, error) {
  return cs.documentRepo.List(ctx, nil)
}

func (cs *contentService) GetDocumentBySlug(ctx context.Context, slug string) (*types.Document, error) {
  return cs.documentRepo.GetBySlug(ctx, nil, slug)
}

func (cs *contentService) CreateDocument(ctx context.Context, data *types.Document) (*types.Document, error) {
  if data.Slug == "" || data.Title == "" {
    return nil, fmt.Errorf("Document requires slug and title")
  }
  created, err := cs.documentRepo.Create(ctx, nil, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("document", events.OpCreate)
  return created, nil
}

func (cs *contentService) UpdateDocument(ctx context.Context, id uuid.UUID, data *types.Document) (*types.Document, error) {
  updated, err := cs.documentRepo.Update(ctx, nil, id, data)
  if err != nil {
    return nil, err
  }
  cs.afterWrite("document", events.OpUpdate)
  return updated, nil
}

func (cs *contentService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
  if err := cs.documentRepo.Delete(ctx, nil, id); err != nil {
    return err
  }
  cs.afterWrite("document", events.OpDelete)
  return nil
}

// ---- Client ----

func (cs *contentService) ListClients(ctx context.Context) ([]types.Client, error) {
  return cs.clientRepo.List(ctx, nil)
}

func (cs *contentService) CreateClient(ctx context.Context, data *types.Client) (*types.Client, error) {
  if data.Name == "" || data.Phone == "" {
    return nil, fmt.Errorf("Client requires name and phone")
  }
  return cs.clientRepo.Create(ctx, nil, data)
}

func (cs *contentService) UpdateClient(ctx context.Context, id uuid.UUID, data *types.Client) (*types.Client, error) {
  return cs.clientRepo.Update(ctx, nil, id, data)
}

func (cs *contentService) DeleteClient(ctx context.Context, id uuid.UUID) error {
  return cs.clientRepo.Delete(ctx, nil, id)
}

// ---- User ----

func (cs *contentService) ListUsers(ctx context.Context) ([]types.User, error) {
  return cs.userRepo.List(ctx, nil)
}

func (cs *contentService) CreateUser(ctx context.Context, data *types.User) (*types.User, error) {
  if data.Email == "" || data.Password == "" {
    return nil, fmt.Errorf("User requires email and password")
  }
  existing, err := cs.userRepo.GetByEmail(ctx, nil, data.Email)
  if err != nil {
    return nil, err
  }
  if existing != nil {
    return nil, fmt.Errorf("User with email %q already exists", data.Email)
  }
  hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
  if err != nil {
    return nil, fmt.Errorf("Failed to hash password: %w", err)
  }
  data.Password = string(hashed)
  return cs.userRepo.Create(ctx, nil, data)
}

func (cs *contentService) UpdateUser(ctx context.Context, id uuid.UUID, data *types.User) (*types.User, error) {
  if data.Password != "" {
    hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
    if err != nil {
      return nil, fmt.Errorf("Failed to hash password: %w", err)
    }
    data.Password = string(hashed)
  }
  return cs.userRepo.Update(ctx, nil, id, data)
}

func (cs *contentService) DeleteUser(ctx context.Context, id uuid.UUID) error {
  return cs.userRepo.Delete(ctx, nil, id)
}
